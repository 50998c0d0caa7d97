package repository

import (
	"context"

	"salon_api/internal/domain/entities"
	"salon_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const salesServiceDetailIndex = "service_detail_id-index"

type saleItem struct {
	ID              string `dynamodbav:"id"`
	ServiceDetailID int64  `dynamodbav:"service_detail_id"`
	ClientID        int64  `dynamodbav:"client_id"`
	EmployeeID      int64  `dynamodbav:"employee_id"`
	Quantity        int    `dynamodbav:"quantity"`
	UnitPrice       string `dynamodbav:"unit_price"`
	Total           string `dynamodbav:"total"`
	Status          string `dynamodbav:"status"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// SaleDynamoRepository reads and settles sales.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: service_detail_id-index (PK: service_detail_id)
//
// Sales are inserted by ServiceDetailDynamoRepository.MarkPaid.

type SaleDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ISaleRepository = (*SaleDynamoRepository)(nil)

func NewSaleDynamoRepository(ddb dynamoAPI, tableName string) *SaleDynamoRepository {
	return &SaleDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func (r *SaleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Sale, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": stringAttr(id),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Sale{}, err
	}
	if len(out.Item) == 0 {
		return entities.Sale{}, nil
	}

	var it saleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Sale{}, err
	}
	return fromSaleItem(it), nil
}

func (r *SaleDynamoRepository) GetByServiceDetailID(ctx context.Context, serviceDetailID int64) (entities.Sale, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(salesServiceDetailIndex),
		KeyConditionExpression: aws.String("service_detail_id = :sdid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sdid": numberAttr(serviceDetailID),
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Sale{}, err
	}
	if len(out.Items) == 0 {
		return entities.Sale{}, nil
	}

	var it saleItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Sale{}, err
	}
	return fromSaleItem(it), nil
}

func (r *SaleDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.SaleStatus) (entities.Sale, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": stringAttr(id),
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       stringAttr(string(from)),
			":to":         stringAttr(string(to)),
			":updated_at": stringAttr(formatTime(nowUTC())),
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Sale{}, interfaces.ErrVersionConflict
		}
		return entities.Sale{}, err
	}

	var it saleItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Sale{}, err
	}
	return fromSaleItem(it), nil
}

func toSaleItem(s entities.Sale) saleItem {
	return saleItem{
		ID:              s.ID,
		ServiceDetailID: s.ServiceDetailID,
		ClientID:        s.ClientID,
		EmployeeID:      s.EmployeeID,
		Quantity:        s.Quantity,
		UnitPrice:       s.UnitPrice.String(),
		Total:           s.Total.String(),
		Status:          string(s.Status),
		CreatedAt:       formatTime(s.CreatedAt),
		UpdatedAt:       formatTime(s.UpdatedAt),
	}
}

func fromSaleItem(it saleItem) entities.Sale {
	return entities.Sale{
		ID:              it.ID,
		ServiceDetailID: it.ServiceDetailID,
		ClientID:        it.ClientID,
		EmployeeID:      it.EmployeeID,
		Quantity:        it.Quantity,
		UnitPrice:       parseDecimal(it.UnitPrice),
		Total:           parseDecimal(it.Total),
		Status:          entities.SaleStatus(it.Status),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
