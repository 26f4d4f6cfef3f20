package repository

import (
	"context"
	"errors"
	"time"

	"price-validity-service/internal/domain/entities"
	"price-validity-service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPriceStatusTableName = "price_status"

type statusHistoryItem struct {
	Status    string `dynamodbav:"status"`
	Timestamp string `dynamodbav:"timestamp"`
	ChangedBy string `dynamodbav:"changed_by"`
	Reason    string `dynamodbav:"reason"`
}

type priceStatusItem struct {
	PriceItemID             string              `dynamodbav:"price_item_id"`
	ProductName             string              `dynamodbav:"product_name"`
	VendorID                string              `dynamodbav:"vendor_id"`
	VendorName              string              `dynamodbav:"vendor_name"`
	CurrentStatus           string              `dynamodbav:"current_status"`
	StatusHistory           []statusHistoryItem `dynamodbav:"status_history"`
	EffectiveDate           string              `dynamodbav:"effective_date"`
	ExpirationDate          string              `dynamodbav:"expiration_date"`
	WarningThreshold        int                 `dynamodbav:"warning_threshold"`
	GracePeriodEnd          string              `dynamodbav:"grace_period_end,omitempty"`
	AutoRenewal             bool                `dynamodbav:"auto_renewal"`
	SuspensionReason        string              `dynamodbav:"suspension_reason,omitempty"`
	LastStatusCheck         string              `dynamodbav:"last_status_check"`
	RenewalNotificationSent bool                `dynamodbav:"renewal_notification_sent"`
	Version                 int64               `dynamodbav:"version"`
}

// PriceStatusDynamoRepository persists PriceStatusRecord entities in
// DynamoDB.
//
// Table requirements:
//   - PK: price_item_id (string)
//
// Transitions are applied with a conditional update guarded on the
// current status and version observed at read time, which gives the
// per-record serialization the lifecycle engine requires: a concurrent
// transition makes the condition fail instead of double-applying.

type PriceStatusDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPriceStatusRepository = (*PriceStatusDynamoRepository)(nil)

func NewPriceStatusDynamoRepository(ddb *dynamodb.Client) *PriceStatusDynamoRepository {
	return &PriceStatusDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRICE_STATUS_TABLE", defaultPriceStatusTableName),
	}
}

func (r *PriceStatusDynamoRepository) List(ctx context.Context) ([]entities.PriceStatusRecord, error) {
	var records []entities.PriceStatusRecord

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}

		var items []priceStatusItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			records = append(records, fromPriceStatusItem(it))
		}
	}

	return records, nil
}

func (r *PriceStatusDynamoRepository) GetByID(ctx context.Context, priceItemID string) (entities.PriceStatusRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"price_item_id": &types.AttributeValueMemberS{Value: priceItemID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PriceStatusRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PriceStatusRecord{}, nil
	}

	var it priceStatusItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PriceStatusRecord{}, err
	}
	return fromPriceStatusItem(it), nil
}

// Create inserts a new record. Returns the zero record when the price
// item id is already taken.
func (r *PriceStatusDynamoRepository) Create(ctx context.Context, record entities.PriceStatusRecord) (entities.PriceStatusRecord, error) {
	av, err := attributevalue.MarshalMap(toPriceStatusItem(record))
	if err != nil {
		return entities.PriceStatusRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "price_item_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PriceStatusRecord{}, nil
		}
		return entities.PriceStatusRecord{}, err
	}
	return record, nil
}

// ApplyTransition appends one history entry and moves the cached
// current status in a single conditional write. Returns the zero record
// when the condition fails, meaning the record is gone or was
// transitioned concurrently since it was read.
func (r *PriceStatusDynamoRepository) ApplyTransition(
	ctx context.Context,
	priceItemID string,
	entry entities.StatusHistoryEntry,
	expectedStatus entities.PriceStatus,
	expectedVersion int64,
) (entities.PriceStatusRecord, error) {
	entryList, err := attributevalue.MarshalList([]statusHistoryItem{toStatusHistoryItem(entry)})
	if err != nil {
		return entities.PriceStatusRecord{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"price_item_id": &types.AttributeValueMemberS{Value: priceItemID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #current_status = :expected_status AND #version = :expected_version"),
		UpdateExpression: aws.String(
			"SET #current_status = :new_status, " +
				"#status_history = list_append(if_not_exists(#status_history, :empty_history), :entry), " +
				"#last_status_check = :checked_at, " +
				"#version = :next_version",
		),
		ExpressionAttributeNames: map[string]string{
			"#id":                "price_item_id",
			"#current_status":    "current_status",
			"#status_history":    "status_history",
			"#last_status_check": "last_status_check",
			"#version":           "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected_status":  &types.AttributeValueMemberS{Value: string(expectedStatus)},
			":expected_version": &types.AttributeValueMemberN{Value: int64ToString(expectedVersion)},
			":new_status":       &types.AttributeValueMemberS{Value: string(entry.Status)},
			":entry":            &types.AttributeValueMemberL{Value: entryList},
			":empty_history":    &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":checked_at":       &types.AttributeValueMemberS{Value: entry.Timestamp.UTC().Format(time.RFC3339Nano)},
			":next_version":     &types.AttributeValueMemberN{Value: int64ToString(expectedVersion + 1)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PriceStatusRecord{}, nil
		}
		return entities.PriceStatusRecord{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PriceStatusRecord{}, nil
	}

	var it priceStatusItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PriceStatusRecord{}, err
	}
	return fromPriceStatusItem(it), nil
}

func toStatusHistoryItem(entry entities.StatusHistoryEntry) statusHistoryItem {
	return statusHistoryItem{
		Status:    string(entry.Status),
		Timestamp: entry.Timestamp.UTC().Format(time.RFC3339Nano),
		ChangedBy: entry.ChangedBy,
		Reason:    entry.Reason,
	}
}

func fromStatusHistoryItem(it statusHistoryItem) entities.StatusHistoryEntry {
	ts, _ := time.Parse(time.RFC3339Nano, it.Timestamp)
	return entities.StatusHistoryEntry{
		Status:    entities.PriceStatus(it.Status),
		Timestamp: ts,
		ChangedBy: it.ChangedBy,
		Reason:    it.Reason,
	}
}

func toPriceStatusItem(record entities.PriceStatusRecord) priceStatusItem {
	it := priceStatusItem{
		PriceItemID:             record.PriceItemID,
		ProductName:             record.ProductName,
		VendorID:                record.VendorID,
		VendorName:              record.VendorName,
		CurrentStatus:           string(record.CurrentStatus),
		StatusHistory:           make([]statusHistoryItem, 0, len(record.StatusHistory)),
		EffectiveDate:           record.EffectiveDate.UTC().Format(time.RFC3339Nano),
		ExpirationDate:          record.ExpirationDate.UTC().Format(time.RFC3339Nano),
		WarningThreshold:        record.WarningThreshold,
		AutoRenewal:             record.AutoRenewal,
		SuspensionReason:        record.SuspensionReason,
		LastStatusCheck:         record.LastStatusCheck.UTC().Format(time.RFC3339Nano),
		RenewalNotificationSent: record.RenewalNotificationSent,
		Version:                 record.Version,
	}
	if record.GracePeriodEnd != nil {
		it.GracePeriodEnd = record.GracePeriodEnd.UTC().Format(time.RFC3339Nano)
	}
	for _, entry := range record.StatusHistory {
		it.StatusHistory = append(it.StatusHistory, toStatusHistoryItem(entry))
	}
	return it
}

func fromPriceStatusItem(it priceStatusItem) entities.PriceStatusRecord {
	effectiveDate, _ := time.Parse(time.RFC3339Nano, it.EffectiveDate)
	expirationDate, _ := time.Parse(time.RFC3339Nano, it.ExpirationDate)
	lastStatusCheck, _ := time.Parse(time.RFC3339Nano, it.LastStatusCheck)

	record := entities.PriceStatusRecord{
		PriceItemID:             it.PriceItemID,
		ProductName:             it.ProductName,
		VendorID:                it.VendorID,
		VendorName:              it.VendorName,
		CurrentStatus:           entities.PriceStatus(it.CurrentStatus),
		StatusHistory:           make([]entities.StatusHistoryEntry, 0, len(it.StatusHistory)),
		EffectiveDate:           effectiveDate,
		ExpirationDate:          expirationDate,
		WarningThreshold:        it.WarningThreshold,
		AutoRenewal:             it.AutoRenewal,
		SuspensionReason:        it.SuspensionReason,
		LastStatusCheck:         lastStatusCheck,
		RenewalNotificationSent: it.RenewalNotificationSent,
		Version:                 it.Version,
	}
	if it.GracePeriodEnd != "" {
		if end, err := time.Parse(time.RFC3339Nano, it.GracePeriodEnd); err == nil {
			record.GracePeriodEnd = &end
		}
	}
	for _, entry := range it.StatusHistory {
		record.StatusHistory = append(record.StatusHistory, fromStatusHistoryItem(entry))
	}
	return record
}
