package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanViewOrEditStaff(t *testing.T) {
	staff := &Staff{ID: 10, UserID: 1, StoreID: 3}

	tests := []struct {
		name      string
		principal Principal
		want      bool
	}{
		{name: "owner", principal: Principal{UserID: 1}, want: true},
		{name: "superuser", principal: Principal{UserID: 99, IsSuperuser: true}, want: true},
		{name: "unrelated", principal: Principal{UserID: 2}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanViewOrEditStaff(tt.principal, staff))
			assert.Equal(t, tt.want, CanViewOrEditSchedule(tt.principal, staff))
		})
	}
}

func TestCanViewOrEditStaff_NilStaff(t *testing.T) {
	assert.False(t, CanViewOrEditStaff(Principal{UserID: 1}, nil))
	assert.True(t, CanViewOrEditStaff(Principal{UserID: 1, IsSuperuser: true}, nil))
}

func TestCanViewUserPage(t *testing.T) {
	assert.True(t, CanViewUserPage(Principal{UserID: 5}, 5))
	assert.True(t, CanViewUserPage(Principal{UserID: 1, IsSuperuser: true}, 5))
	assert.False(t, CanViewUserPage(Principal{UserID: 1}, 5))
}
