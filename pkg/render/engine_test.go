package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_RenderIteratesAndSubstitutes(t *testing.T) {
	e := NewEngine()
	data := map[string]interface{}{
		"title": "Laporan",
		"items": []map[string]interface{}{
			{"name": "MAINTENANCE", "count": 6},
			{"name": "NOISE", "count": 4},
		},
	}

	html, err := e.Render(`<h1>{{title}}</h1>{{#each items}}<li>{{this.name}}={{this.count}}</li>{{/each}}`, data)
	require.NoError(t, err)
	assert.Equal(t, "<h1>Laporan</h1><li>MAINTENANCE=6</li><li>NOISE=4</li>", html)
}

func TestEngine_Helpers(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name string
		src  string
		data map[string]interface{}
		want string
	}{
		{"percentage", `{{percentage part total}}`, map[string]interface{}{"part": 6, "total": 10}, "60"},
		{"percentage zero total", `{{percentage part total}}`, map[string]interface{}{"part": 6, "total": 0}, "0"},
		{"percentage exact half", `{{percentage part total}}`, map[string]interface{}{"part": 29, "total": 200}, "15"},
		{"eq strings", `{{#if (eq status "paid")}}yes{{else}}no{{/if}}`, map[string]interface{}{"status": "paid"}, "yes"},
		{"eq mismatch", `{{#if (eq status "paid")}}yes{{else}}no{{/if}}`, map[string]interface{}{"status": "pending"}, "no"},
		{"eq number vs string", `{{#if (eq n "1")}}yes{{else}}no{{/if}}`, map[string]interface{}{"n": 1}, "no"},
		{"gte true", `{{#if (gte rate 80)}}good{{else}}low{{/if}}`, map[string]interface{}{"rate": 86}, "good"},
		{"gte equal", `{{#if (gte rate 80)}}good{{else}}low{{/if}}`, map[string]interface{}{"rate": 80}, "good"},
		{"gte false", `{{#if (gte rate 80)}}good{{else}}low{{/if}}`, map[string]interface{}{"rate": 79}, "low"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Render(tt.src, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEngine_MalformedTemplate(t *testing.T) {
	_, err := NewEngine().Render(`{{#each items}}<li>`, map[string]interface{}{})
	require.Error(t, err)

	var renderErr *Error
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, "parse", renderErr.Stage)
}

func TestEngine_DoesNotMutateData(t *testing.T) {
	data := map[string]interface{}{"title": "A"}
	_, err := NewEngine().Render(Default(OperationalTemplate), data)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"title": "A"}, data)
}
