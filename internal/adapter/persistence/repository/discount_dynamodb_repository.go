package repository

import (
	"context"
	"strconv"
	"time"

	"hospital_estimate/internal/domain/entities"
	"hospital_estimate/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDiscountsTableName = "discounts"

type discountItem struct {
	ID                string `dynamodbav:"id"`
	PatientCategoryID string `dynamodbav:"patient_category_id"`
	ServiceCategoryID string `dynamodbav:"service_category_id"`
	DiscountType      string `dynamodbav:"discount_type"`
	DiscountValue     string `dynamodbav:"discount_value"`
	CreatedAt         string `dynamodbav:"created_at"`
}

// DiscountDynamoRepository persists discount rules in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The (patient_category_id, service_category_id) pair is kept unique by the
// use case layer; the pricing engine refuses to run if a duplicate slips in.
type DiscountDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDiscountRepository = (*DiscountDynamoRepository)(nil)

func NewDiscountDynamoRepository(ddb *dynamodb.Client) *DiscountDynamoRepository {
	return &DiscountDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DISCOUNTS_TABLE", defaultDiscountsTableName),
	}
}

func (r *DiscountDynamoRepository) Create(ctx context.Context, d entities.Discount) (entities.Discount, error) {
	av, err := attributevalue.MarshalMap(toDiscountItem(d))
	if err != nil {
		return entities.Discount{}, err
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
		return entities.Discount{}, err
	}
	return d, nil
}

func (r *DiscountDynamoRepository) GetByID(ctx context.Context, id string) (entities.Discount, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Discount{}, err
	}
	if len(out.Item) == 0 {
		return entities.Discount{}, nil
	}

	var it discountItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Discount{}, err
	}
	return fromDiscountItem(it), nil
}

func (r *DiscountDynamoRepository) GetByPair(ctx context.Context, patientCategoryID, serviceCategoryID string) (entities.Discount, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#pc = :pc AND #sc = :sc"),
		ExpressionAttributeNames: map[string]string{
			"#pc": "patient_category_id",
			"#sc": "service_category_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pc": &types.AttributeValueMemberS{Value: patientCategoryID},
			":sc": &types.AttributeValueMemberS{Value: serviceCategoryID},
		},
	})
	if err != nil {
		return entities.Discount{}, err
	}
	if len(out.Items) == 0 {
		return entities.Discount{}, nil
	}

	var it discountItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Discount{}, err
	}
	return fromDiscountItem(it), nil
}

func (r *DiscountDynamoRepository) List(ctx context.Context) ([]entities.Discount, error) {
	var discounts []entities.Discount

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}

		var items []discountItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			discounts = append(discounts, fromDiscountItem(it))
		}
	}
	return discounts, nil
}

func (r *DiscountDynamoRepository) Update(ctx context.Context, d entities.Discount) (entities.Discount, error) {
	av, err := attributevalue.MarshalMap(toDiscountItem(d))
	if err != nil {
		return entities.Discount{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Discount{}, err
	}
	return d, nil
}

func (r *DiscountDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toDiscountItem(d entities.Discount) discountItem {
	return discountItem{
		ID:                d.ID,
		PatientCategoryID: d.PatientCategoryID,
		ServiceCategoryID: d.ServiceCategoryID,
		DiscountType:      string(d.Type),
		DiscountValue:     floatToString(d.Value),
		CreatedAt:         d.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromDiscountItem(it discountItem) entities.Discount {
	value, _ := strconv.ParseFloat(it.DiscountValue, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Discount{
		ID:                it.ID,
		PatientCategoryID: it.PatientCategoryID,
		ServiceCategoryID: it.ServiceCategoryID,
		Type:              entities.DiscountType(it.DiscountType),
		Value:             value,
		CreatedAt:         createdAt,
	}
}
