package employee

import (
	"testing"

	"github.com/rosterhub/roster-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmployee(t *testing.T) {
	e, err := New("Alice", "Murphy", "alice@example.com")
	require.NoError(t, err)

	assert.NotEmpty(t, e.ID)
	assert.True(t, validator.IsValidUUID(e.ID))
	assert.Equal(t, "Alice Murphy", e.FullName())
	assert.False(t, e.IsDeleted())
	assert.Equal(t, e.CreatedAt, e.UpdatedAt)
}

func TestNewEmployeeValidation(t *testing.T) {
	cases := []struct {
		name      string
		first     string
		last      string
		email     string
		wantField string
	}{
		{"empty first name", "", "Murphy", "alice@example.com", "first_name"},
		{"blank last name", "Alice", "   ", "alice@example.com", "last_name"},
		{"empty email", "Alice", "Murphy", "", "email"},
		{"malformed email", "Alice", "Murphy", "not-an-email", "email"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := New(c.first, c.last, c.email)
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), c.wantField)
		})
	}
}

func TestUpdateDetails(t *testing.T) {
	e, err := New("Alice", "Murphy", "alice@example.com")
	require.NoError(t, err)
	created := e.UpdatedAt

	require.NoError(t, e.UpdateDetails("Alicia", "Murphy", "alicia@example.com"))
	assert.Equal(t, "Alicia Murphy", e.FullName())
	assert.Equal(t, "alicia@example.com", e.Email)
	assert.False(t, e.UpdatedAt.Before(created))
}

func TestUpdateDetailsRejectedLeavesEntityUntouched(t *testing.T) {
	e, err := New("Alice", "Murphy", "alice@example.com")
	require.NoError(t, err)

	err = e.UpdateDetails("", "Murphy", "alice@example.com")
	require.Error(t, err)
	assert.Equal(t, "Alice", e.FirstName)
	assert.Equal(t, "alice@example.com", e.Email)
}

func TestSoftDelete(t *testing.T) {
	e, err := New("Alice", "Murphy", "alice@example.com")
	require.NoError(t, err)

	e.Delete()
	assert.True(t, e.IsDeleted())
	require.NotNil(t, e.DeletedAt)
	assert.Equal(t, *e.DeletedAt, e.UpdatedAt)
}
