package docstore

import (
	"fmt"
	"reflect"
	"time"

	"github.com/kashoe/chessclub-api/internal/pkg/isotime"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

var tTime = reflect.TypeOf(time.Time{})

// Registry encodes time.Time as an ISO-8601 string and decodes it back, so stored
// timestamps survive a round trip through any client of the database.
var Registry = newRegistry()

func newRegistry() *bsoncodec.Registry {
	reg := bson.NewRegistry()
	reg.RegisterTypeEncoder(tTime, bsoncodec.ValueEncoderFunc(encodeTime))
	reg.RegisterTypeDecoder(tTime, bsoncodec.ValueDecoderFunc(decodeTime))
	return reg
}

func encodeTime(_ bsoncodec.EncodeContext, vw bsonrw.ValueWriter, val reflect.Value) error {
	if !val.IsValid() || val.Type() != tTime {
		return bsoncodec.ValueEncoderError{Name: "encodeTime", Types: []reflect.Type{tTime}, Received: val}
	}
	return vw.WriteString(isotime.Format(val.Interface().(time.Time)))
}

func decodeTime(_ bsoncodec.DecodeContext, vr bsonrw.ValueReader, val reflect.Value) error {
	if !val.CanSet() || val.Type() != tTime {
		return bsoncodec.ValueDecoderError{Name: "decodeTime", Types: []reflect.Type{tTime}, Received: val}
	}

	var t time.Time
	switch vr.Type() {
	case bsontype.String:
		s, err := vr.ReadString()
		if err != nil {
			return err
		}
		if t, err = isotime.Parse(s); err != nil {
			return err
		}
	case bsontype.DateTime:
		ms, err := vr.ReadDateTime()
		if err != nil {
			return err
		}
		t = time.UnixMilli(ms).UTC()
	case bsontype.Null:
		if err := vr.ReadNull(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("docstore: cannot decode %s into time.Time", vr.Type())
	}
	val.Set(reflect.ValueOf(t))
	return nil
}

// Marshal encodes v with Registry.
func Marshal(v any) (bson.Raw, error) {
	b, err := bson.MarshalWithRegistry(Registry, v)
	if err != nil {
		return nil, err
	}
	return bson.Raw(b), nil
}

// Unmarshal decodes raw into v with Registry.
func Unmarshal(raw bson.Raw, v any) error {
	return bson.UnmarshalWithRegistry(Registry, raw, v)
}

// MarshalValue encodes a single value with Registry, e.g. for comparing filter values.
func MarshalValue(v any) (bson.RawValue, error) {
	t, b, err := bson.MarshalValueWithRegistry(Registry, v)
	if err != nil {
		return bson.RawValue{}, err
	}
	return bson.RawValue{Type: t, Value: b}, nil
}
