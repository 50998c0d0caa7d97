package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"salon_api/internal/domain/entities"
	"salon_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	serviceDetailsStatusIndex   = "status-index"
	serviceDetailsEmployeeIndex = "employee_id-index"
	serviceDetailsClientIndex   = "client_id-index"

	serviceDetailCounterName = "service_details"
)

type serviceDetailItem struct {
	ID              int64  `dynamodbav:"id"`
	EmployeeID      int64  `dynamodbav:"employee_id"`
	ServiceID       int64  `dynamodbav:"service_id"`
	AppointmentID   int64  `dynamodbav:"appointment_id"`
	ClientID        int64  `dynamodbav:"client_id"`
	AppointmentDate string `dynamodbav:"appointment_date"`
	UnitPrice       string `dynamodbav:"unit_price"`
	Quantity        int    `dynamodbav:"quantity"`
	StartTime       string `dynamodbav:"start_time"`
	EndTime         string `dynamodbav:"end_time"`
	DurationMinutes int    `dynamodbav:"duration_minutes"`
	Status          string `dynamodbav:"status"`
	Version         int64  `dynamodbav:"version"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// ServiceDetailDynamoRepository persists ServiceDetail entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//   - GSI status-index (PK: status, SK: start_time)
//   - GSI employee_id-index (PK: employee_id, SK: start_time)
//   - GSI client_id-index (PK: client_id, SK: start_time)
//
// Ids come from an atomic counter item in the counters table (PK: name).
// Every write is conditional on the stored version.

type ServiceDetailDynamoRepository struct {
	ddb           dynamoAPI
	tableName     string
	salesTable    string
	countersTable string
}

var _ interfaces.IServiceDetailRepository = (*ServiceDetailDynamoRepository)(nil)

func NewServiceDetailDynamoRepository(ddb dynamoAPI, tableName, salesTable, countersTable string) *ServiceDetailDynamoRepository {
	return &ServiceDetailDynamoRepository{
		ddb:           ddb,
		tableName:     tableName,
		salesTable:    salesTable,
		countersTable: countersTable,
	}
}

func (r *ServiceDetailDynamoRepository) Create(ctx context.Context, d entities.ServiceDetail) (entities.ServiceDetail, error) {
	id, err := r.nextID(ctx)
	if err != nil {
		return entities.ServiceDetail{}, err
	}
	d.ID = id
	if d.Version == 0 {
		d.Version = 1
	}

	av, err := attributevalue.MarshalMap(toServiceDetailItem(d))
	if err != nil {
		return entities.ServiceDetail{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ServiceDetail{}, err
	}
	return d, nil
}

func (r *ServiceDetailDynamoRepository) nextID(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"name": stringAttr(serviceDetailCounterName),
		},
		UpdateExpression: aws.String("ADD #value :one"),
		ExpressionAttributeNames: map[string]string{
			"#value": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": numberAttr(1),
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, fmt.Errorf("allocate service detail id: %w", err)
	}
	n, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("allocate service detail id: counter value missing")
	}
	return strconv.ParseInt(n.Value, 10, 64)
}

func (r *ServiceDetailDynamoRepository) GetByID(ctx context.Context, id int64) (entities.ServiceDetail, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": numberAttr(id),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceDetail{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceDetail{}, nil
	}

	var it serviceDetailItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceDetail{}, err
	}
	return fromServiceDetailItem(it), nil
}

// List queries the index matching the filter's selector, or scans when only
// a date range is given. The date range is applied after reading.
func (r *ServiceDetailDynamoRepository) List(ctx context.Context, filter entities.ServiceDetailFilter) ([]entities.ServiceDetail, error) {
	var raw []map[string]types.AttributeValue
	var err error

	switch {
	case filter.Status != "":
		raw, err = r.queryIndex(ctx, serviceDetailsStatusIndex, "status", stringAttr(string(filter.Status)))
	case filter.EmployeeID != 0:
		raw, err = r.queryIndex(ctx, serviceDetailsEmployeeIndex, "employee_id", numberAttr(filter.EmployeeID))
	case filter.ClientID != 0:
		raw, err = r.queryIndex(ctx, serviceDetailsClientIndex, "client_id", numberAttr(filter.ClientID))
	default:
		raw, err = r.scan(ctx)
	}
	if err != nil {
		return nil, err
	}

	items := make([]entities.ServiceDetail, 0, len(raw))
	for _, av := range raw {
		var it serviceDetailItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		d := fromServiceDetailItem(it)
		if filter.Matches(d) {
			items = append(items, d)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].StartTime.Equal(items[j].StartTime) {
			return items[i].StartTime.Before(items[j].StartTime)
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (r *ServiceDetailDynamoRepository) queryIndex(ctx context.Context, index, key string, value types.AttributeValue) ([]map[string]types.AttributeValue, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": key,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": value,
		},
		ScanIndexForward: aws.Bool(true),
	})

	var out []map[string]types.AttributeValue
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, page.Items...)
	}
	return out, nil
}

func (r *ServiceDetailDynamoRepository) scan(ctx context.Context) ([]map[string]types.AttributeValue, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	var out []map[string]types.AttributeValue
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, page.Items...)
	}
	return out, nil
}

func (r *ServiceDetailDynamoRepository) UpdateDetails(ctx context.Context, d entities.ServiceDetail, expectedVersion int64) (entities.ServiceDetail, error) {
	return r.update(ctx, d.ID, expectedVersion, "", func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #employee_id = :employee_id, #service_id = :service_id, #unit_price = :unit_price, " +
			"#quantity = :quantity, #start_time = :start_time, #end_time = :end_time, " +
			"#duration_minutes = :duration_minutes, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":employee_id":      numberAttr(d.EmployeeID),
			":service_id":       numberAttr(d.ServiceID),
			":unit_price":       stringAttr(d.UnitPrice.String()),
			":quantity":         numberAttr(int64(d.Quantity)),
			":start_time":       stringAttr(formatTime(d.StartTime)),
			":end_time":         stringAttr(formatTime(d.EndTime)),
			":duration_minutes": numberAttr(int64(d.DurationMinutes)),
			":updated_at":       stringAttr(formatTime(d.UpdatedAt)),
		}
		names := map[string]string{
			"#employee_id":      "employee_id",
			"#service_id":       "service_id",
			"#unit_price":       "unit_price",
			"#quantity":         "quantity",
			"#start_time":       "start_time",
			"#end_time":         "end_time",
			"#duration_minutes": "duration_minutes",
			"#updated_at":       "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ServiceDetailDynamoRepository) UpdateStatus(ctx context.Context, id int64, from, to entities.ServiceDetailStatus, expectedVersion int64) (entities.ServiceDetail, error) {
	return r.update(ctx, id, expectedVersion, from, func() (string, map[string]types.AttributeValue, map[string]string) {
		return "SET #status = :to",
			map[string]types.AttributeValue{":to": stringAttr(string(to))},
			nil
	})
}

// update applies a SET expression guarded by the expected version (and the
// expected status when given), bumping version and updated_at.
func (r *ServiceDetailDynamoRepository) update(
	ctx context.Context,
	id int64,
	expectedVersion int64,
	expectedStatus entities.ServiceDetailStatus,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.ServiceDetail, error) {
	updateExpr, values, names := build()
	if _, ok := values[":updated_at"]; !ok {
		updateExpr += ", #updated_at = :now"
		values[":now"] = stringAttr(formatTime(nowUTC()))
		names = mergeNames(names, map[string]string{"#updated_at": "updated_at"})
	}
	updateExpr += ", #version = :next_version"
	values[":next_version"] = numberAttr(expectedVersion + 1)
	values[":expected_version"] = numberAttr(expectedVersion)

	cond := "attribute_exists(#id) AND #version = :expected_version"
	baseNames := map[string]string{"#id": "id", "#version": "version"}
	if expectedStatus != "" {
		cond += " AND #status = :expected_status"
		values[":expected_status"] = stringAttr(string(expectedStatus))
		baseNames["#status"] = "status"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": numberAttr(id),
		},
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, baseNames),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.ServiceDetail{}, interfaces.ErrVersionConflict
		}
		return entities.ServiceDetail{}, err
	}

	var it serviceDetailItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceDetail{}, err
	}
	return fromServiceDetailItem(it), nil
}

// MarkPaid moves the record from En proceso to Pagada and writes the sale in
// one transaction, so neither can exist without the other.
func (r *ServiceDetailDynamoRepository) MarkPaid(ctx context.Context, id int64, expectedVersion int64, sale entities.Sale) (entities.ServiceDetail, error) {
	saleAV, err := attributevalue.MarshalMap(toSaleItem(sale))
	if err != nil {
		return entities.ServiceDetail{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": numberAttr(id),
					},
					UpdateExpression:    aws.String("SET #status = :paid, #version = :next_version, #updated_at = :now"),
					ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected_version AND #status = :in_progress"),
					ExpressionAttributeNames: map[string]string{
						"#id":         "id",
						"#status":     "status",
						"#version":    "version",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":paid":             stringAttr(string(entities.ServiceDetailStatusPagada)),
						":in_progress":      stringAttr(string(entities.ServiceDetailStatusEnProceso)),
						":next_version":     numberAttr(expectedVersion + 1),
						":expected_version": numberAttr(expectedVersion),
						":now":              stringAttr(formatTime(sale.CreatedAt)),
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.salesTable),
					Item:                saleAV,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
		},
	})
	if err != nil {
		if isTransactionConditionFailed(err) {
			return entities.ServiceDetail{}, interfaces.ErrVersionConflict
		}
		return entities.ServiceDetail{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *ServiceDetailDynamoRepository) Delete(ctx context.Context, id int64, expectedVersion int64) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": numberAttr(id),
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected_version"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected_version": numberAttr(expectedVersion),
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return interfaces.ErrVersionConflict
		}
		return err
	}
	return nil
}

func toServiceDetailItem(d entities.ServiceDetail) serviceDetailItem {
	return serviceDetailItem{
		ID:              d.ID,
		EmployeeID:      d.EmployeeID,
		ServiceID:       d.ServiceID,
		AppointmentID:   d.AppointmentID,
		ClientID:        d.ClientID,
		AppointmentDate: formatTime(d.AppointmentDate),
		UnitPrice:       d.UnitPrice.String(),
		Quantity:        d.Quantity,
		StartTime:       formatTime(d.StartTime),
		EndTime:         formatTime(d.EndTime),
		DurationMinutes: d.DurationMinutes,
		Status:          string(d.Status),
		Version:         d.Version,
		CreatedAt:       formatTime(d.CreatedAt),
		UpdatedAt:       formatTime(d.UpdatedAt),
	}
}

func fromServiceDetailItem(it serviceDetailItem) entities.ServiceDetail {
	return entities.ServiceDetail{
		ID:              it.ID,
		EmployeeID:      it.EmployeeID,
		ServiceID:       it.ServiceID,
		AppointmentID:   it.AppointmentID,
		ClientID:        it.ClientID,
		AppointmentDate: parseTime(it.AppointmentDate),
		UnitPrice:       parseDecimal(it.UnitPrice),
		Quantity:        it.Quantity,
		StartTime:       parseTime(it.StartTime),
		EndTime:         parseTime(it.EndTime),
		DurationMinutes: it.DurationMinutes,
		Status:          entities.ServiceDetailStatus(it.Status),
		Version:         it.Version,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
