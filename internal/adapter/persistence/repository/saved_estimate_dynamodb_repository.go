package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"hospital_estimate/internal/domain/entities"
	"hospital_estimate/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSavedEstimatesTableName = "saved_estimates"
	defaultCountersTableName       = "counters"

	estimateCounterID = "estimate_number"
)

type savedEstimateItem struct {
	ID                  string `dynamodbav:"id"`
	EstimateNumber      string `dynamodbav:"estimate_number"`
	PatientName         string `dynamodbav:"patient_name"`
	PatientUHID         string `dynamodbav:"patient_uhid"`
	PatientCategory     string `dynamodbav:"patient_category"`
	LengthOfStay        int    `dynamodbav:"length_of_stay"`
	Subtotal            string `dynamodbav:"subtotal"`
	TotalDiscount       string `dynamodbav:"total_discount"`
	FinalTotal          string `dynamodbav:"final_total"`
	GeneratedByRole     string `dynamodbav:"generated_by_role"`
	GeneratedByUserID   string `dynamodbav:"generated_by_user_id"`
	GeneratedByUsername string `dynamodbav:"generated_by"`
	EstimateData        string `dynamodbav:"estimate_data"`
	CreatedAt           string `dynamodbav:"created_at"`
}

// SavedEstimateDynamoRepository persists saved estimates in DynamoDB.
//
// Table requirements:
//   - saved estimates: PK id (string)
//   - counters: PK id (string), attribute "current" (number)
//
// NextEstimateNumber relies on an ADD update against the counters table, so
// concurrent saves always receive distinct numbers.
type SavedEstimateDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	countersTable string
}

var _ interfaces.ISavedEstimateRepository = (*SavedEstimateDynamoRepository)(nil)

func NewSavedEstimateDynamoRepository(ddb *dynamodb.Client) *SavedEstimateDynamoRepository {
	return &SavedEstimateDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("SAVED_ESTIMATES_TABLE", defaultSavedEstimatesTableName),
		countersTable: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *SavedEstimateDynamoRepository) NextEstimateNumber(ctx context.Context) (string, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: estimateCounterID},
		},
		UpdateExpression: aws.String("ADD #current :one"),
		ExpressionAttributeNames: map[string]string{
			"#current": "current",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return "", err
	}

	n, ok := out.Attributes["current"].(*types.AttributeValueMemberN)
	if !ok {
		return "", fmt.Errorf("counter %s returned no numeric value", estimateCounterID)
	}
	current, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("EST%03d", current), nil
}

func (r *SavedEstimateDynamoRepository) Create(ctx context.Context, e entities.SavedEstimate) (entities.SavedEstimate, error) {
	av, err := attributevalue.MarshalMap(toSavedEstimateItem(e))
	if err != nil {
		return entities.SavedEstimate{}, err
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
		return entities.SavedEstimate{}, err
	}
	return e, nil
}

func (r *SavedEstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.SavedEstimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SavedEstimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.SavedEstimate{}, nil
	}

	var it savedEstimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SavedEstimate{}, err
	}
	return fromSavedEstimateItem(it), nil
}

func (r *SavedEstimateDynamoRepository) ListAll(ctx context.Context) ([]entities.SavedEstimate, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
}

func (r *SavedEstimateDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.SavedEstimate, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#uid = :uid"),
		ExpressionAttributeNames: map[string]string{
			"#uid": "generated_by_user_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
}

func (r *SavedEstimateDynamoRepository) scan(ctx context.Context, input *dynamodb.ScanInput) ([]entities.SavedEstimate, error) {
	var estimates []entities.SavedEstimate

	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}

		var items []savedEstimateItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			estimates = append(estimates, fromSavedEstimateItem(it))
		}
	}
	return estimates, nil
}

func toSavedEstimateItem(e entities.SavedEstimate) savedEstimateItem {
	return savedEstimateItem{
		ID:                  e.ID,
		EstimateNumber:      e.EstimateNumber,
		PatientName:         e.PatientName,
		PatientUHID:         e.PatientUHID,
		PatientCategory:     e.PatientCategory,
		LengthOfStay:        e.LengthOfStay,
		Subtotal:            floatToString(e.Subtotal),
		TotalDiscount:       floatToString(e.TotalDiscount),
		FinalTotal:          floatToString(e.FinalTotal),
		GeneratedByRole:     string(e.GeneratedByRole),
		GeneratedByUserID:   e.GeneratedByUserID,
		GeneratedByUsername: e.GeneratedByUsername,
		EstimateData:        string(e.EstimateData),
		CreatedAt:           e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSavedEstimateItem(it savedEstimateItem) entities.SavedEstimate {
	subtotal, _ := strconv.ParseFloat(it.Subtotal, 64)
	totalDiscount, _ := strconv.ParseFloat(it.TotalDiscount, 64)
	finalTotal, _ := strconv.ParseFloat(it.FinalTotal, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.SavedEstimate{
		ID:                  it.ID,
		EstimateNumber:      it.EstimateNumber,
		PatientName:         it.PatientName,
		PatientUHID:         it.PatientUHID,
		PatientCategory:     it.PatientCategory,
		LengthOfStay:        it.LengthOfStay,
		Subtotal:            subtotal,
		TotalDiscount:       totalDiscount,
		FinalTotal:          finalTotal,
		GeneratedByRole:     entities.Role(it.GeneratedByRole),
		GeneratedByUserID:   it.GeneratedByUserID,
		GeneratedByUsername: it.GeneratedByUsername,
		EstimateData:        []byte(it.EstimateData),
		CreatedAt:           createdAt,
	}
}
