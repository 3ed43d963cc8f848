package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"purchase_sale/internal/domain/entities"
	"purchase_sale/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const contractsCounterName = "purchase_sales"

type contractItem struct {
	ID                 int64   `dynamodbav:"id"`
	ClientID           int64   `dynamodbav:"client_id"`
	UserID             int64   `dynamodbav:"user_id"`
	VehicleID          int64   `dynamodbav:"vehicle_id"`
	PurchasePrice      float64 `dynamodbav:"purchase_price"`
	SalePrice          float64 `dynamodbav:"sale_price"`
	ContractType       string  `dynamodbav:"contract_type"`
	ContractStatus     string  `dynamodbav:"contract_status"`
	PaymentMethod      string  `dynamodbav:"payment_method"`
	PaymentTerms       string  `dynamodbav:"payment_terms"`
	PaymentLimitations string  `dynamodbav:"payment_limitations"`
	Observations       *string `dynamodbav:"observations,omitempty"`
	CreatedAt          string  `dynamodbav:"created_at"`
	UpdatedAt          string  `dynamodbav:"updated_at"`
}

// ContractDynamoRepository persists Contract entities in DynamoDB.
//
// Table requirements:
//   - contracts table PK: id (number)
//   - counters table PK: name (string), holding the last issued contract id
//
// Reads that need the full vehicle history use strongly consistent scans.
// Writes for the same vehicle are serialized by the injected locker.

type ContractDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	countersTable string
	locker        interfaces.IVehicleLocker
}

var _ interfaces.IContractRepository = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb *dynamodb.Client, tableName, countersTable string, locker interfaces.IVehicleLocker) *ContractDynamoRepository {
	return &ContractDynamoRepository{
		ddb:           ddb,
		tableName:     tableName,
		countersTable: countersTable,
		locker:        locker,
	}
}

func (r *ContractDynamoRepository) FindByID(ctx context.Context, id int64) (entities.Contract, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            contractKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Contract{}, err
	}
	if len(out.Item) == 0 {
		return entities.Contract{}, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

func (r *ContractDynamoRepository) FindAll(ctx context.Context) ([]entities.Contract, error) {
	return r.scan(ctx, "", nil, nil)
}

func (r *ContractDynamoRepository) FindAllPaged(ctx context.Context, page entities.PageRequest) (entities.Page[entities.Contract], error) {
	all, err := r.scan(ctx, "", nil, nil)
	if err != nil {
		return entities.Page[entities.Contract]{}, err
	}
	return entities.Paginate(all, page), nil
}

func (r *ContractDynamoRepository) FindByClientID(ctx context.Context, clientID int64) ([]entities.Contract, error) {
	return r.findByReference(ctx, "client_id", clientID)
}

func (r *ContractDynamoRepository) FindByUserID(ctx context.Context, userID int64) ([]entities.Contract, error) {
	return r.findByReference(ctx, "user_id", userID)
}

func (r *ContractDynamoRepository) FindByVehicleID(ctx context.Context, vehicleID int64) ([]entities.Contract, error) {
	return r.findByReference(ctx, "vehicle_id", vehicleID)
}

// FindMatching evaluates the criteria in memory over a full scan; the free
// text term has no DynamoDB expression equivalent.
func (r *ContractDynamoRepository) FindMatching(ctx context.Context, criteria entities.ContractFilterCriteria, page entities.PageRequest) (entities.Page[entities.Contract], error) {
	all, err := r.scan(ctx, "", nil, nil)
	if err != nil {
		return entities.Page[entities.Contract]{}, err
	}
	matched := make([]entities.Contract, 0, len(all))
	for _, c := range all {
		if criteria.Matches(c) {
			matched = append(matched, c)
		}
	}
	return entities.Paginate(matched, page), nil
}

func (r *ContractDynamoRepository) Save(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	now := time.Now().UTC()
	condition := "attribute_exists(#id)"

	if c.ID == 0 {
		id, err := r.nextID(ctx)
		if err != nil {
			return entities.Contract{}, err
		}
		c.ID = id
		c.CreatedAt = now
		condition = "attribute_not_exists(#id)"
	} else if c.CreatedAt.IsZero() {
		existing, err := r.FindByID(ctx, c.ID)
		if err != nil {
			return entities.Contract{}, err
		}
		c.CreatedAt = existing.CreatedAt
	}
	c.UpdatedAt = now

	av, err := attributevalue.MarshalMap(toContractItem(c))
	if err != nil {
		return entities.Contract{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Contract{}, fmt.Errorf("save contract %d: conflicting write: %w", c.ID, err)
		}
		return entities.Contract{}, err
	}
	return c, nil
}

func (r *ContractDynamoRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       contractKey(id),
	})
	return err
}

func (r *ContractDynamoRepository) RunInVehicleScope(ctx context.Context, vehicleID int64, fn func(ctx context.Context) error) error {
	return runLocked(ctx, r.locker, vehicleID, fn)
}

// nextID atomically increments the contracts counter.
func (r *ContractDynamoRepository) nextID(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: contractsCounterName},
		},
		UpdateExpression: aws.String("ADD #value :one"),
		ExpressionAttributeNames: map[string]string{
			"#value": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, fmt.Errorf("next contract id: %w", err)
	}
	v, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.New("next contract id: counter value missing")
	}
	return strconv.ParseInt(v.Value, 10, 64)
}

func (r *ContractDynamoRepository) findByReference(ctx context.Context, attribute string, id int64) ([]entities.Contract, error) {
	return r.scan(ctx,
		"#ref = :ref",
		map[string]string{"#ref": attribute},
		map[string]types.AttributeValue{":ref": &types.AttributeValueMemberN{Value: int64ToString(id)}},
	)
}

func (r *ContractDynamoRepository) scan(
	ctx context.Context,
	filter string,
	names map[string]string,
	values map[string]types.AttributeValue,
) ([]entities.Contract, error) {
	in := &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	}
	if filter != "" {
		in.FilterExpression = aws.String(filter)
		in.ExpressionAttributeNames = names
		in.ExpressionAttributeValues = values
	}

	var out []entities.Contract
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []contractItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromContractItem(it))
		}
	}
	sortByID(out)
	return out, nil
}

func contractKey(id int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberN{Value: int64ToString(id)},
	}
}

func toContractItem(c entities.Contract) contractItem {
	return contractItem{
		ID:                 c.ID,
		ClientID:           c.ClientID,
		UserID:             c.UserID,
		VehicleID:          c.VehicleID,
		PurchasePrice:      c.PurchasePrice,
		SalePrice:          c.SalePrice,
		ContractType:       string(c.ContractType),
		ContractStatus:     string(c.ContractStatus),
		PaymentMethod:      string(c.PaymentMethod),
		PaymentTerms:       c.PaymentTerms,
		PaymentLimitations: c.PaymentLimitations,
		Observations:       c.Observations,
		CreatedAt:          c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromContractItem(it contractItem) entities.Contract {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Contract{
		ID:                 it.ID,
		ClientID:           it.ClientID,
		UserID:             it.UserID,
		VehicleID:          it.VehicleID,
		PurchasePrice:      it.PurchasePrice,
		SalePrice:          it.SalePrice,
		ContractType:       entities.ContractType(it.ContractType),
		ContractStatus:     entities.ContractStatus(it.ContractStatus),
		PaymentMethod:      entities.PaymentMethod(it.PaymentMethod),
		PaymentTerms:       it.PaymentTerms,
		PaymentLimitations: it.PaymentLimitations,
		Observations:       it.Observations,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
}
