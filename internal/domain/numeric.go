package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Valores monetários saem como número JSON, não como string.
	decimal.MarshalJSONWithoutQuotes = true
}

// Int é um inteiro que aceita número JSON ou string numérica no payload.
// null e "" viram zero; qualquer outro valor não numérico é rejeitado.
type Int int64

// UnmarshalJSON faz o parse estrito do valor.
func (i *Int) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if bytes.Equal(raw, []byte("null")) {
		*i = 0
		return nil
	}

	s := string(raw)
	if strings.HasPrefix(s, `"`) {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("invalid number %s", s)
		}
		s = strings.TrimSpace(unquoted)
		if s == "" {
			*i = 0
			return nil
		}
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		*i = Int(n)
		return nil
	}

	// Aceita 12 escrito como 12.0, mas nunca frações.
	f, ferr := strconv.ParseFloat(s, 64)
	if ferr != nil || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt64 {
		return fmt.Errorf("invalid number %s", string(raw))
	}
	*i = Int(int64(f))
	return nil
}

// Int64 devolve o valor como int64.
func (i Int) Int64() int64 { return int64(i) }

// dateLayouts lista os formatos aceitos para datas no payload.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Date aceita datas em RFC3339 ou no formato YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate cria uma Date a partir de um time.Time.
func NewDate(t time.Time) *Date {
	return &Date{Time: t}
}

// UnmarshalJSON faz o parse estrito da data.
func (d *Date) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if bytes.Equal(raw, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return fmt.Errorf("invalid date %s", string(raw))
	}

	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}

// MarshalJSON serializa a data em RFC3339.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.UTC().Format(time.RFC3339))
}
