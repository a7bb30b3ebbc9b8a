package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"relatorio_ronda/internal/domain/entities"
	"relatorio_ronda/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Global secondary indexes the DynamoDB tables must declare. Each index is
// named after its partition key.
const (
	indexNome             = "nome-index"
	indexEmail            = "email-index"
	indexEmpresaID        = "empresa_id-index"
	indexVigilanteID      = "vigilante_id-index"
	indexRelatorioRondaID = "relatorio_ronda_id-index"
)

// filter is a FilterExpression with its placeholders.
type filter struct {
	expr   string
	names  map[string]string
	values map[string]types.AttributeValue
}

func (f filter) and(expr string, names map[string]string, values map[string]types.AttributeValue) filter {
	out := filter{expr: expr, names: map[string]string{}, values: map[string]types.AttributeValue{}}
	if f.expr != "" {
		out.expr = "(" + f.expr + ") AND " + expr
	}
	for k, v := range f.names {
		out.names[k] = v
	}
	for k, v := range names {
		out.names[k] = v
	}
	for k, v := range f.values {
		out.values[k] = v
	}
	for k, v := range values {
		out.values[k] = v
	}
	return out
}

func (f filter) active() filter {
	return f.and("#ativo = :ativo",
		map[string]string{"#ativo": "ativo"},
		map[string]types.AttributeValue{":ativo": &types.AttributeValueMemberBOOL{Value: true}})
}

// excluding drops the row being updated from a uniqueness check.
func (f filter) excluding(id int) filter {
	if id == 0 {
		return f
	}
	return f.and("#id <> :excluir",
		map[string]string{"#id": "id"},
		map[string]types.AttributeValue{":excluir": numberAttr(id)})
}

func (f filter) nilIfEmpty() (*string, map[string]string, map[string]types.AttributeValue) {
	if f.expr == "" {
		return nil, nil, nil
	}
	names, values := f.names, f.values
	if len(names) == 0 {
		names = nil
	}
	if len(values) == 0 {
		values = nil
	}
	return aws.String(f.expr), names, values
}

// dynamoTable holds the item plumbing shared by every entity table: numeric
// id keys, item I marshalled with attributevalue and converted by from.
type dynamoTable[T entities.Activatable, I any] struct {
	ddb  *dynamodb.Client
	name string
	from func(I) T
}

func numberAttr(n int) *types.AttributeValueMemberN {
	return &types.AttributeValueMemberN{Value: strconv.Itoa(n)}
}

func idKey(id int) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"id": numberAttr(id)}
}

// getAny returns the row whatever its Ativo flag.
func (t dynamoTable[T, I]) getAny(ctx context.Context, id int) (T, bool, error) {
	var zero T
	out, err := t.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(t.name),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return zero, false, err
	}
	if len(out.Item) == 0 {
		return zero, false, nil
	}
	var it I
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return zero, false, err
	}
	return t.from(it), true, nil
}

func (t dynamoTable[T, I]) get(ctx context.Context, id int) (T, error) {
	var zero T
	e, ok, err := t.getAny(ctx, id)
	if err != nil || !ok || !e.IsAtivo() {
		return zero, err
	}
	return e, nil
}

func (t dynamoTable[T, I]) existsActive(ctx context.Context, id int) (bool, error) {
	e, err := t.get(ctx, id)
	if err != nil {
		return false, err
	}
	return entities.Found(e), nil
}

func (t dynamoTable[T, I]) create(ctx context.Context, item I) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = t.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(t.name),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return fmt.Errorf("%w: %s id", interfaces.ErrUniqueViolation, t.name)
	}
	return err
}

// replace overwrites an active item. A missing or inactive item is left alone.
func (t dynamoTable[T, I]) replace(ctx context.Context, item I) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = t.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(t.name),
		Item:                      av,
		ConditionExpression:       aws.String("attribute_exists(#id) AND #ativo = :ativo"),
		ExpressionAttributeNames:  map[string]string{"#id": "id", "#ativo": "ativo"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":ativo": &types.AttributeValueMemberBOOL{Value: true}},
	})
	return ignoreConditionFailed(err)
}

func (t dynamoTable[T, I]) deactivate(ctx context.Context, id int) error {
	_, err := t.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                aws.String(t.name),
		Key:                      idKey(id),
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		UpdateExpression:         aws.String("SET #ativo = :inativo"),
		ExpressionAttributeNames: map[string]string{"#id": "id", "#ativo": "ativo"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":inativo": &types.AttributeValueMemberBOOL{Value: false},
		},
	})
	return ignoreConditionFailed(err)
}

func (t dynamoTable[T, I]) delete(ctx context.Context, id int) error {
	_, err := t.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(t.name),
		Key:       idKey(id),
	})
	return err
}

func (t dynamoTable[T, I]) scan(ctx context.Context, f filter) ([]T, error) {
	expr, names, values := f.nilIfEmpty()
	p := dynamodb.NewScanPaginator(t.ddb, &dynamodb.ScanInput{
		TableName:                 aws.String(t.name),
		FilterExpression:          expr,
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ConsistentRead:            aws.Bool(true),
	})
	var out []T
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items, err := t.unmarshal(page.Items)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

// queryIndex reads an index partition. Index reads are eventually consistent.
func (t dynamoTable[T, I]) queryIndex(ctx context.Context, index, attr string, value types.AttributeValue, f filter) ([]T, error) {
	names := map[string]string{"#pk": attr}
	values := map[string]types.AttributeValue{":pk": value}
	for k, v := range f.names {
		names[k] = v
	}
	for k, v := range f.values {
		values[k] = v
	}
	filterExpr, _, _ := f.nilIfEmpty()

	p := dynamodb.NewQueryPaginator(t.ddb, &dynamodb.QueryInput{
		TableName:                 aws.String(t.name),
		IndexName:                 aws.String(index),
		KeyConditionExpression:    aws.String("#pk = :pk"),
		FilterExpression:          filterExpr,
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	var out []T
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items, err := t.unmarshal(page.Items)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

func (t dynamoTable[T, I]) unmarshal(raw []map[string]types.AttributeValue) ([]T, error) {
	var items []I
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		out = append(out, t.from(it))
	}
	return out, nil
}

// byIDAny loads rows of any state for navigations.
func (t dynamoTable[T, I]) byIDAny(ctx context.Context, keys []int) (map[int]T, error) {
	out := make(map[int]T, len(keys))
	for _, id := range keys {
		e, ok, err := t.getAny(ctx, id)
		if err != nil {
			return nil, err
		}
		if ok {
			out[id] = e
		}
	}
	return out, nil
}

func ignoreConditionFailed(err error) error {
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return nil
	}
	return err
}

// idCounter hands out ids from an atomic counter item per table.
//
// Table requirements:
//   - PK: nome (string)
type idCounter struct {
	ddb  *dynamodb.Client
	name string
}

func (c idCounter) next(ctx context.Context, table string) (int, error) {
	out, err := c.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                aws.String(c.name),
		Key:                      map[string]types.AttributeValue{"nome": &types.AttributeValueMemberS{Value: table}},
		UpdateExpression:         aws.String("ADD #valor :um"),
		ExpressionAttributeNames: map[string]string{"#valor": "valor"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":um": numberAttr(1),
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, fmt.Errorf("next id for %s: %w", table, err)
	}
	var v struct {
		Valor int `dynamodbav:"valor"`
	}
	if err := attributevalue.UnmarshalMap(out.Attributes, &v); err != nil {
		return 0, err
	}
	return v.Valor, nil
}

const timeLayout = time.RFC3339Nano

func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(timeLayout, s)
	return t
}

func formatOptionalTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func parseOptionalTime(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t := parseTime(*s)
	return &t
}
