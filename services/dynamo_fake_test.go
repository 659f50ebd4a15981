package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"sponsorlink_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory DynamoAPI covering the table key schemas and the
// expression shapes the services emit.
type fakeDynamo struct {
	tables map[string]map[string]map[string]types.AttributeValue

	// failTable makes every operation against that table return the error,
	// for degradation tests.
	failTable map[string]error

	// beforePutConditional runs after the marshal but before the existence
	// check, to simulate a concurrent writer sneaking in.
	beforePutConditional func(table string)
}

var tableKeyAttrs = map[string][]string{
	models.UsersTable:    {"userId"},
	models.AthletesTable: {"userId"},
	models.SponsorsTable: {"userId"},
	models.MatchesTable:  {"pairKey"},
	models.MessagesTable: {"matchId", "createdAt"},
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{
		tables:    make(map[string]map[string]map[string]types.AttributeValue),
		failTable: make(map[string]error),
	}
}

func (f *fakeDynamo) table(name string) map[string]map[string]types.AttributeValue {
	if f.tables[name] == nil {
		f.tables[name] = make(map[string]map[string]types.AttributeValue)
	}
	return f.tables[name]
}

func (f *fakeDynamo) itemKey(tableName string, item map[string]types.AttributeValue) string {
	parts := make([]string, 0, 2)
	for _, attr := range tableKeyAttrs[tableName] {
		s, ok := item[attr].(*types.AttributeValueMemberS)
		if !ok {
			panic(fmt.Sprintf("fakeDynamo: missing key attribute %q for table %q", attr, tableName))
		}
		parts = append(parts, s.Value)
	}
	return strings.Join(parts, "|")
}

func (f *fakeDynamo) GetItem(_ context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	if err := f.failTable[tableName]; err != nil {
		return nil, err
	}
	item, ok := f.table(tableName)[f.itemKey(tableName, key)]
	if !ok {
		return nil, models.ErrNotFound
	}
	return cloneItem(item), nil
}

func (f *fakeDynamo) PutItem(_ context.Context, tableName string, item interface{}) error {
	if err := f.failTable[tableName]; err != nil {
		return err
	}
	marshaled, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	f.table(tableName)[f.itemKey(tableName, marshaled)] = marshaled
	return nil
}

func (f *fakeDynamo) PutItemConditional(_ context.Context, tableName string, item interface{}, conditionExpression string) error {
	if err := f.failTable[tableName]; err != nil {
		return err
	}
	marshaled, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	if f.beforePutConditional != nil {
		f.beforePutConditional(tableName)
	}

	key := f.itemKey(tableName, marshaled)
	if strings.HasPrefix(conditionExpression, "attribute_not_exists(") {
		if _, exists := f.table(tableName)[key]; exists {
			return models.ErrConditionFailed
		}
	}
	f.table(tableName)[key] = marshaled
	return nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, tableName string, updateExpression string, key map[string]types.AttributeValue, values map[string]types.AttributeValue, names map[string]string) (map[string]types.AttributeValue, error) {
	if err := f.failTable[tableName]; err != nil {
		return nil, err
	}
	id := f.itemKey(tableName, key)
	item, ok := f.table(tableName)[id]
	if !ok {
		item = cloneItem(key)
	}

	if err := applyUpdateExpression(item, updateExpression, values, names); err != nil {
		return nil, err
	}
	f.table(tableName)[id] = item
	return cloneItem(item), nil
}

func (f *fakeDynamo) QueryItems(ctx context.Context, tableName string, keyCondition string, values map[string]types.AttributeValue, names map[string]string, limit int32) ([]map[string]types.AttributeValue, error) {
	return f.query(tableName, keyCondition, values, names, limit, false, true)
}

func (f *fakeDynamo) QueryItemsWithIndex(_ context.Context, tableName string, _ string, keyCondition string, values map[string]types.AttributeValue, names map[string]string, limit int32) ([]map[string]types.AttributeValue, error) {
	return f.query(tableName, keyCondition, values, names, limit, false, true)
}

func (f *fakeDynamo) QueryItemsWithOptions(_ context.Context, tableName string, keyCondition string, values map[string]types.AttributeValue, names map[string]string, limit int32, latestFirst bool) ([]map[string]types.AttributeValue, error) {
	return f.query(tableName, keyCondition, values, names, limit, latestFirst, true)
}

func (f *fakeDynamo) query(tableName, keyCondition string, values map[string]types.AttributeValue, names map[string]string, limit int32, latestFirst, sorted bool) ([]map[string]types.AttributeValue, error) {
	if err := f.failTable[tableName]; err != nil {
		return nil, err
	}

	attr, value, err := parseEqualityCondition(keyCondition, values, names)
	if err != nil {
		return nil, err
	}

	var items []map[string]types.AttributeValue
	for _, item := range f.table(tableName) {
		if s, ok := item[attr].(*types.AttributeValueMemberS); ok && s.Value == value {
			items = append(items, cloneItem(item))
		}
	}

	if sorted {
		sort.Slice(items, func(i, j int) bool {
			a := stringAttr(items[i], "createdAt")
			b := stringAttr(items[j], "createdAt")
			if latestFirst {
				return a > b
			}
			return a < b
		})
	}
	if limit > 0 && int32(len(items)) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (f *fakeDynamo) ScanWithFilter(_ context.Context, tableName string, filterFunc func(map[string]types.AttributeValue) bool, result interface{}) error {
	if err := f.failTable[tableName]; err != nil {
		return err
	}
	var items []map[string]types.AttributeValue
	for _, item := range f.table(tableName) {
		if filterFunc == nil || filterFunc(cloneItem(item)) {
			items = append(items, cloneItem(item))
		}
	}
	return attributevalue.UnmarshalListOfMaps(items, result)
}

// applyUpdateExpression supports the SET/ADD/DELETE clause shapes the
// services use: "SET a = :v" assignments, "ADD set :v" string-set union and
// "DELETE set :v" string-set removal.
func applyUpdateExpression(item map[string]types.AttributeValue, expression string, values map[string]types.AttributeValue, names map[string]string) error {
	tokens := strings.Fields(strings.ReplaceAll(expression, ",", " "))
	mode := ""
	for i := 0; i < len(tokens); i++ {
		switch strings.ToUpper(tokens[i]) {
		case "SET", "ADD", "DELETE", "REMOVE":
			mode = strings.ToUpper(tokens[i])
			continue
		}

		attr := resolveName(tokens[i], names)
		switch mode {
		case "SET":
			if i+2 >= len(tokens) || tokens[i+1] != "=" {
				return fmt.Errorf("fakeDynamo: unsupported SET clause in %q", expression)
			}
			item[attr] = values[tokens[i+2]]
			i += 2
		case "ADD":
			if i+1 >= len(tokens) {
				return fmt.Errorf("fakeDynamo: unsupported ADD clause in %q", expression)
			}
			addend, ok := values[tokens[i+1]].(*types.AttributeValueMemberSS)
			if !ok {
				return fmt.Errorf("fakeDynamo: ADD only supports string sets")
			}
			item[attr] = unionSet(item[attr], addend.Value)
			i++
		case "DELETE":
			if i+1 >= len(tokens) {
				return fmt.Errorf("fakeDynamo: unsupported DELETE clause in %q", expression)
			}
			subtrahend, ok := values[tokens[i+1]].(*types.AttributeValueMemberSS)
			if !ok {
				return fmt.Errorf("fakeDynamo: DELETE only supports string sets")
			}
			removeFromSet(item, attr, subtrahend.Value)
			i++
		default:
			return fmt.Errorf("fakeDynamo: unsupported update expression %q", expression)
		}
	}
	return nil
}

func unionSet(existing types.AttributeValue, members []string) *types.AttributeValueMemberSS {
	seen := make(map[string]struct{})
	var merged []string
	if set, ok := existing.(*types.AttributeValueMemberSS); ok {
		for _, v := range set.Value {
			seen[v] = struct{}{}
			merged = append(merged, v)
		}
	}
	for _, v := range members {
		if _, dup := seen[v]; !dup {
			merged = append(merged, v)
		}
	}
	return &types.AttributeValueMemberSS{Value: merged}
}

func removeFromSet(item map[string]types.AttributeValue, attr string, members []string) {
	set, ok := item[attr].(*types.AttributeValueMemberSS)
	if !ok {
		return
	}
	drop := make(map[string]struct{}, len(members))
	for _, v := range members {
		drop[v] = struct{}{}
	}
	var kept []string
	for _, v := range set.Value {
		if _, gone := drop[v]; !gone {
			kept = append(kept, v)
		}
	}
	// DynamoDB removes the attribute rather than storing an empty set.
	if len(kept) == 0 {
		delete(item, attr)
		return
	}
	item[attr] = &types.AttributeValueMemberSS{Value: kept}
}

func parseEqualityCondition(condition string, values map[string]types.AttributeValue, names map[string]string) (string, string, error) {
	parts := strings.SplitN(condition, "=", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("fakeDynamo: unsupported key condition %q", condition)
	}
	attr := resolveName(strings.TrimSpace(parts[0]), names)
	placeholder := strings.TrimSpace(parts[1])
	value, ok := values[placeholder].(*types.AttributeValueMemberS)
	if !ok {
		return "", "", fmt.Errorf("fakeDynamo: missing value for placeholder %q", placeholder)
	}
	return attr, value.Value, nil
}

func resolveName(token string, names map[string]string) string {
	if strings.HasPrefix(token, "#") {
		if resolved, ok := names[token]; ok {
			return resolved
		}
	}
	return token
}

func stringAttr(item map[string]types.AttributeValue, attr string) string {
	if s, ok := item[attr].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func cloneItem(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	clone := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		clone[k] = v
	}
	return clone
}
