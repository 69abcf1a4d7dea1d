package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// predictRequestFieldMap caches JSON tag -> struct field index mappings
var (
	predictRequestFieldMap     map[string]int
	predictRequestFieldMapOnce sync.Once
)

func getPredictRequestFieldMap() map[string]int {
	predictRequestFieldMapOnce.Do(func() {
		t := reflect.TypeOf(PredictRequest{})
		predictRequestFieldMap = make(map[string]int, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			tag := t.Field(i).Tag.Get("json")
			if tag == "" || tag == "-" {
				continue
			}
			name := strings.Split(tag, ",")[0]
			predictRequestFieldMap[name] = i
		}
	})
	return predictRequestFieldMap
}

// UnmarshalJSON accepts numbers, numeric strings ("12", " 3.5 ") and junk
// for every numeric field. Junk becomes 0: a dirty record still gets an
// estimate rather than a decode error. Only a body that is not a JSON
// object fails.
func (r *PredictRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("flex unmarshal: %w", err)
	}

	*r = PredictRequest{}
	fieldMap := getPredictRequestFieldMap()
	v := reflect.ValueOf(r).Elem()

	for key, rawVal := range raw {
		idx, ok := fieldMap[key]
		if !ok {
			continue
		}
		setFlexField(v.Field(idx), rawVal)
	}
	return nil
}

func setFlexField(fv reflect.Value, rawVal json.RawMessage) {
	if !fv.CanSet() {
		return
	}
	switch fv.Kind() {
	case reflect.String:
		var s string
		if err := json.Unmarshal(rawVal, &s); err == nil {
			fv.SetString(s)
			return
		}
		// Numeric IDs are kept verbatim
		fv.SetString(strings.Trim(string(bytes.TrimSpace(rawVal)), `"`))
	case reflect.Float32, reflect.Float64:
		fv.SetFloat(FlexFloat(rawVal))
	case reflect.Ptr:
		if isJSONNull(rawVal) || fv.Type().Elem().Kind() != reflect.Float64 {
			return
		}
		n := FlexFloat(rawVal)
		fv.Set(reflect.ValueOf(&n))
	}
}

// FlexFloat decodes a JSON number or numeric string. Anything else,
// including NaN and infinities, is 0.
func FlexFloat(rawVal json.RawMessage) float64 {
	var n float64
	if err := json.Unmarshal(rawVal, &n); err == nil {
		return n
	}
	var s string
	if err := json.Unmarshal(rawVal, &s); err != nil {
		return 0
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

func isJSONNull(rawVal json.RawMessage) bool {
	return string(bytes.TrimSpace(rawVal)) == "null"
}
