package repository

import (
	"context"
	"sort"

	"salon_api/internal/domain/entities"
	"salon_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const salePaymentsSaleIDIndex = "sale_id-index"

type salePaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	SaleID             string                 `dynamodbav:"sale_id"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// SalePaymentDynamoRepository persists SalePayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: sale_id-index (PK: sale_id)

type SalePaymentDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ISalePaymentRepository = (*SalePaymentDynamoRepository)(nil)

func NewSalePaymentDynamoRepository(ddb dynamoAPI, tableName string) *SalePaymentDynamoRepository {
	return &SalePaymentDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func (r *SalePaymentDynamoRepository) Create(ctx context.Context, p entities.SalePayment) (entities.SalePayment, error) {
	av, err := attributevalue.MarshalMap(toSalePaymentItem(p))
	if err != nil {
		return entities.SalePayment{}, err
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
		return entities.SalePayment{}, err
	}
	return p, nil
}

func (r *SalePaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.SalePayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": stringAttr(id),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SalePayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.SalePayment{}, nil
	}

	var it salePaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SalePayment{}, err
	}
	return fromSalePaymentItem(it), nil
}

// ListBySaleID returns the payments of a sale, newest first.
func (r *SalePaymentDynamoRepository) ListBySaleID(ctx context.Context, saleID string) ([]entities.SalePayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(salePaymentsSaleIDIndex),
		KeyConditionExpression: aws.String("sale_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": stringAttr(saleID),
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.SalePayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it salePaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromSalePaymentItem(it))
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Date.After(items[j].Date) })
	return items, nil
}

func toSalePaymentItem(p entities.SalePayment) salePaymentItem {
	return salePaymentItem{
		ID:                 p.ID,
		SaleID:             p.SaleID,
		Date:               formatTime(p.Date),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromSalePaymentItem(it salePaymentItem) entities.SalePayment {
	return entities.SalePayment{
		ID:                 it.ID,
		SaleID:             it.SaleID,
		Date:               parseTime(it.Date),
		Status:             entities.PaymentStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
