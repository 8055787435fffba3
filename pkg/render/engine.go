// Package render turns report data into HTML using handlebars templates.
package render

import (
	"fmt"
	"reflect"

	"github.com/aymerick/raymond"

	"github.com/sangkips/residence-api/pkg/metric"
)

// Error is returned when a template cannot be parsed or executed.
type Error struct {
	Stage string // parse or exec
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("render template (%s): %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Engine renders handlebars sources. It holds no state between calls.
type Engine struct{}

// NewEngine creates a rendering engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Render parses source and executes it against data.
func (e *Engine) Render(source string, data interface{}) (string, error) {
	tpl, err := raymond.Parse(source)
	if err != nil {
		return "", &Error{Stage: "parse", Err: err}
	}
	tpl.RegisterHelpers(Helpers())

	html, err := tpl.Exec(data)
	if err != nil {
		return "", &Error{Stage: "exec", Err: err}
	}
	return html, nil
}

// Helpers returns the helpers available to every report template.
func Helpers() map[string]interface{} {
	return map[string]interface{}{
		"eq":         eqHelper,
		"gte":        gteHelper,
		"percentage": percentageHelper,
	}
}

func eqHelper(a, b interface{}) bool {
	fa, aNum := toFloat(a)
	fb, bNum := toFloat(b)
	if aNum || bNum {
		return aNum && bNum && fa == fb
	}
	return reflect.DeepEqual(a, b)
}

func gteHelper(a, b interface{}) bool {
	fa, aNum := toFloat(a)
	fb, bNum := toFloat(b)
	if aNum && bNum {
		return fa >= fb
	}
	sa, aStr := a.(string)
	sb, bStr := b.(string)
	return aStr && bStr && sa >= sb
}

func percentageHelper(value, total interface{}) int {
	v, _ := toFloat(value)
	t, _ := toFloat(total)
	return metric.Percentage(v, t)
}

func toFloat(v interface{}) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
