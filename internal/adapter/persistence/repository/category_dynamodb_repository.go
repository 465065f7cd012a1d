package repository

import (
	"context"
	"time"

	"hospital_estimate/internal/domain/entities"
	"hospital_estimate/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServiceCategoriesTableName = "service_categories"
	defaultPatientCategoriesTableName = "patient_categories"
)

type categoryItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	DisplayName string `dynamodbav:"display_name"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// ServiceCategoryDynamoRepository persists service categories in DynamoDB.
// Categories are a small seeded reference table, so lookups by name scan.
//
// Table requirements:
//   - PK: id (string)
type ServiceCategoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceCategoryRepository = (*ServiceCategoryDynamoRepository)(nil)

func NewServiceCategoryDynamoRepository(ddb *dynamodb.Client) *ServiceCategoryDynamoRepository {
	return &ServiceCategoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_CATEGORIES_TABLE", defaultServiceCategoriesTableName),
	}
}

func (r *ServiceCategoryDynamoRepository) Create(ctx context.Context, c entities.ServiceCategory) (entities.ServiceCategory, error) {
	it := categoryItem{ID: c.ID, Name: c.Name, DisplayName: c.DisplayName, CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339Nano)}
	if err := putCategory(ctx, r.ddb, r.tableName, it); err != nil {
		return entities.ServiceCategory{}, err
	}
	return c, nil
}

func (r *ServiceCategoryDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceCategory, error) {
	it, err := getCategoryByID(ctx, r.ddb, r.tableName, id)
	if err != nil {
		return entities.ServiceCategory{}, err
	}
	return entities.ServiceCategory{ID: it.ID, Name: it.Name, DisplayName: it.DisplayName, CreatedAt: parseCategoryTime(it.CreatedAt)}, nil
}

func (r *ServiceCategoryDynamoRepository) GetByName(ctx context.Context, name string) (entities.ServiceCategory, error) {
	it, err := scanCategoryByName(ctx, r.ddb, r.tableName, name)
	if err != nil {
		return entities.ServiceCategory{}, err
	}
	return entities.ServiceCategory{ID: it.ID, Name: it.Name, DisplayName: it.DisplayName, CreatedAt: parseCategoryTime(it.CreatedAt)}, nil
}

func (r *ServiceCategoryDynamoRepository) List(ctx context.Context) ([]entities.ServiceCategory, error) {
	items, err := scanCategories(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	categories := make([]entities.ServiceCategory, 0, len(items))
	for _, it := range items {
		categories = append(categories, entities.ServiceCategory{ID: it.ID, Name: it.Name, DisplayName: it.DisplayName, CreatedAt: parseCategoryTime(it.CreatedAt)})
	}
	return categories, nil
}

// PatientCategoryDynamoRepository persists patient categories in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type PatientCategoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPatientCategoryRepository = (*PatientCategoryDynamoRepository)(nil)

func NewPatientCategoryDynamoRepository(ddb *dynamodb.Client) *PatientCategoryDynamoRepository {
	return &PatientCategoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PATIENT_CATEGORIES_TABLE", defaultPatientCategoriesTableName),
	}
}

func (r *PatientCategoryDynamoRepository) Create(ctx context.Context, c entities.PatientCategory) (entities.PatientCategory, error) {
	it := categoryItem{ID: c.ID, Name: c.Name, DisplayName: c.DisplayName, CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339Nano)}
	if err := putCategory(ctx, r.ddb, r.tableName, it); err != nil {
		return entities.PatientCategory{}, err
	}
	return c, nil
}

func (r *PatientCategoryDynamoRepository) GetByID(ctx context.Context, id string) (entities.PatientCategory, error) {
	it, err := getCategoryByID(ctx, r.ddb, r.tableName, id)
	if err != nil {
		return entities.PatientCategory{}, err
	}
	return entities.PatientCategory{ID: it.ID, Name: it.Name, DisplayName: it.DisplayName, CreatedAt: parseCategoryTime(it.CreatedAt)}, nil
}

func (r *PatientCategoryDynamoRepository) GetByName(ctx context.Context, name string) (entities.PatientCategory, error) {
	it, err := scanCategoryByName(ctx, r.ddb, r.tableName, name)
	if err != nil {
		return entities.PatientCategory{}, err
	}
	return entities.PatientCategory{ID: it.ID, Name: it.Name, DisplayName: it.DisplayName, CreatedAt: parseCategoryTime(it.CreatedAt)}, nil
}

func (r *PatientCategoryDynamoRepository) List(ctx context.Context) ([]entities.PatientCategory, error) {
	items, err := scanCategories(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	categories := make([]entities.PatientCategory, 0, len(items))
	for _, it := range items {
		categories = append(categories, entities.PatientCategory{ID: it.ID, Name: it.Name, DisplayName: it.DisplayName, CreatedAt: parseCategoryTime(it.CreatedAt)})
	}
	return categories, nil
}

func putCategory(ctx context.Context, ddb *dynamodb.Client, tableName string, it categoryItem) error {
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func getCategoryByID(ctx context.Context, ddb *dynamodb.Client, tableName, id string) (categoryItem, error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return categoryItem{}, err
	}
	if len(out.Item) == 0 {
		return categoryItem{}, nil
	}

	var it categoryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return categoryItem{}, err
	}
	return it, nil
}

func scanCategoryByName(ctx context.Context, ddb *dynamodb.Client, tableName, name string) (categoryItem, error) {
	out, err := ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(tableName),
		FilterExpression: aws.String("#name = :name"),
		ExpressionAttributeNames: map[string]string{
			"#name": "name",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name": &types.AttributeValueMemberS{Value: name},
		},
	})
	if err != nil {
		return categoryItem{}, err
	}
	if len(out.Items) == 0 {
		return categoryItem{}, nil
	}

	var it categoryItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return categoryItem{}, err
	}
	return it, nil
}

func scanCategories(ctx context.Context, ddb *dynamodb.Client, tableName string) ([]categoryItem, error) {
	var items []categoryItem

	paginator := dynamodb.NewScanPaginator(ddb, &dynamodb.ScanInput{
		TableName: aws.String(tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}

		var pageItems []categoryItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &pageItems); err != nil {
			return nil, err
		}
		items = append(items, pageItems...)
	}
	return items, nil
}

func parseCategoryTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
