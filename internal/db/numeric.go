package db

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
)

// Numeric is an arbitrary-precision integer column stored as numeric(78,0).
// The zero value reads as 0.
type Numeric struct {
	v *big.Int
}

func NewNumeric(x *big.Int) Numeric {
	if x == nil {
		return Numeric{v: new(big.Int)}
	}
	return Numeric{v: new(big.Int).Set(x)}
}

func NumericFromInt64(x int64) Numeric {
	return Numeric{v: big.NewInt(x)}
}

// ParseNumeric parses a base-10 integer string.
func ParseNumeric(s string) (Numeric, error) {
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Numeric{}, fmt.Errorf("invalid numeric value %q", s)
	}
	return Numeric{v: x}, nil
}

// Int returns a copy of the underlying value.
func (n Numeric) Int() *big.Int {
	if n.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(n.v)
}

func (n Numeric) Sign() int {
	if n.v == nil {
		return 0
	}
	return n.v.Sign()
}

func (n Numeric) String() string {
	if n.v == nil {
		return "0"
	}
	return n.v.String()
}

func (n Numeric) Value() (driver.Value, error) {
	return n.String(), nil
}

func (n *Numeric) Scan(src any) error {
	switch value := src.(type) {
	case nil:
		n.v = new(big.Int)
	case int64:
		n.v = big.NewInt(value)
	case float64:
		f := new(big.Float).SetFloat64(value)
		n.v, _ = f.Int(nil)
	case []byte:
		return n.setString(string(value))
	case string:
		return n.setString(value)
	default:
		return fmt.Errorf("scan numeric: unsupported type %T", src)
	}
	return nil
}

func (n *Numeric) setString(s string) error {
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		// postgres renders numeric(78,0) without a fraction, other engines may not
		f, _, err := big.ParseFloat(s, 10, 256, big.ToZero)
		if err != nil {
			return fmt.Errorf("scan numeric %q: %w", s, err)
		}
		x, _ = f.Int(nil)
	}
	n.v = x
	return nil
}

func (n Numeric) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

func (n *Numeric) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var i int64
		if errInt := json.Unmarshal(data, &i); errInt != nil {
			return fmt.Errorf("unmarshal numeric: %w", err)
		}
		s = strconv.FormatInt(i, 10)
	}
	return n.setString(s)
}

// GormDataType keeps AutoMigrate from guessing a type for the struct.
func (Numeric) GormDataType() string {
	return "numeric(78,0)"
}
