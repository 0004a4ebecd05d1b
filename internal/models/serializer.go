package models

import (
	"context"
	"encoding/json"
	"reflect"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm/schema"
)

func init() {
	schema.RegisterSerializer("lenient", lenientJSON{})
}

// lenientJSON stores values as JSON like the gorm json serializer.
//
// Column values that do not decode are logged and read as the zero value of
// the field, so a single malformed row does not fail every query touching it.
type lenientJSON struct{}

func (lenientJSON) Scan(ctx context.Context, field *schema.Field, dst reflect.Value, dbValue any) error {
	fieldValue := reflect.New(field.FieldType)

	var data []byte
	switch v := dbValue.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, fieldValue.Interface()); err != nil {
			log.Warn().Str("column", field.DBName).Err(err).Msg("could not decode stored value, reading it as empty")
			fieldValue = reflect.New(field.FieldType)
		}
	}

	field.ReflectValueOf(ctx, dst).Set(fieldValue.Elem())
	return nil
}

func (lenientJSON) Value(ctx context.Context, field *schema.Field, dst reflect.Value, fieldValue any) (any, error) {
	return schema.JSONSerializer{}.Value(ctx, field, dst, fieldValue)
}
