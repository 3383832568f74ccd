package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adfharrison1/go-records/pkg/domain"
)

func validStudent() domain.Fields {
	return domain.Fields{"name": "Alice Smith", "age": 20, "grade": "A", "major": "Computer Science"}
}

func TestSchemaValidate(t *testing.T) {
	schema := domain.StudentSchema()

	tests := []struct {
		name        string
		mutate      func(f domain.Fields)
		expectField string
	}{
		{name: "valid record", mutate: func(f domain.Fields) {}},
		{name: "age as integral float", mutate: func(f domain.Fields) { f["age"] = float64(21) }},
		{name: "age below range", mutate: func(f domain.Fields) { f["age"] = 15 }, expectField: "age"},
		{name: "age above range", mutate: func(f domain.Fields) { f["age"] = 100 }, expectField: "age"},
		{name: "fractional age", mutate: func(f domain.Fields) { f["age"] = 20.5 }, expectField: "age"},
		{name: "age as text", mutate: func(f domain.Fields) { f["age"] = "20" }, expectField: "age"},
		{name: "unlisted grade", mutate: func(f domain.Fields) { f["grade"] = "A+" }, expectField: "grade"},
		{name: "blank name", mutate: func(f domain.Fields) { f["name"] = "   " }, expectField: "name"},
		{name: "missing major", mutate: func(f domain.Fields) { delete(f, "major") }, expectField: "major"},
		{name: "unknown field", mutate: func(f domain.Fields) { f["email"] = "a@b.c" }, expectField: "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := validStudent()
			tt.mutate(fields)

			out, err := schema.Validate(fields)
			if tt.expectField == "" {
				require.NoError(t, err)
				assert.Len(t, out, len(schema))
				return
			}

			require.Error(t, err)
			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.expectField, ve.Field)
			assert.NotEmpty(t, ve.Reason)
			assert.Nil(t, out)
		})
	}
}

func TestSchemaValidateReportsFirstFailureInSchemaOrder(t *testing.T) {
	fields := domain.Fields{"name": "", "age": 5, "grade": "Z", "major": "Art"}

	_, err := domain.StudentSchema().Validate(fields)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "name", ve.Field)
}

func TestSchemaValidateNormalizes(t *testing.T) {
	fields := validStudent()
	fields["age"] = int64(30)
	fields["name"] = "  Bob  "

	out, err := domain.StudentSchema().Validate(fields)
	require.NoError(t, err)

	assert.Equal(t, 30, out["age"])
	assert.Equal(t, "Bob", out["name"])
	// input is left untouched
	assert.Equal(t, int64(30), fields["age"])
}

func TestSchemaDefaults(t *testing.T) {
	defaults := domain.StudentSchema().Defaults()

	assert.Equal(t, domain.Fields{
		"name":  "",
		"age":   domain.MinStudentAge,
		"grade": "A",
		"major": "",
	}, defaults)
}

func TestSchemaNamesKeepOrder(t *testing.T) {
	assert.Equal(t, []string{"name", "age", "grade", "major"}, domain.StudentSchema().Names())
}

func TestValidators(t *testing.T) {
	_, err := domain.MaxLength(3)("abcd")
	assert.Error(t, err)

	v, err := domain.Chain(domain.NonEmpty(), domain.MaxLength(3))(" ab ")
	require.NoError(t, err)
	assert.Equal(t, "ab", v)

	_, err = domain.OneOf("x", "y")("z")
	assert.EqualError(t, err, "must be one of x, y")
}

func TestToInt(t *testing.T) {
	n, ok := domain.ToInt(uint8(7))
	assert.True(t, ok)
	assert.Equal(t, 7, n)

	_, ok = domain.ToInt(1.5)
	assert.False(t, ok)

	_, ok = domain.ToInt("1")
	assert.False(t, ok)
}

func TestValuesMatch(t *testing.T) {
	assert.True(t, domain.ValuesMatch("alice", "ALICE"))
	assert.True(t, domain.ValuesMatch(20, float64(20)))
	assert.False(t, domain.ValuesMatch(20, "20"))
	assert.False(t, domain.ValuesMatch(nil, 0))
}
