package constant_test

import (
	"testing"

	"github.com/taskora/client-go/constant"
)

func TestRoleFromID(t *testing.T) {
	tests := []struct {
		name   string
		roleID int
		want   constant.Role
	}{
		{name: "admin", roleID: 1, want: constant.RoleAdmin},
		{name: "provider", roleID: 2, want: constant.RoleProvider},
		{name: "client", roleID: 3, want: constant.RoleClient},
		{name: "unknown id falls back to client", roleID: 99, want: constant.RoleClient},
		{name: "zero id falls back to client", roleID: 0, want: constant.RoleClient},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := constant.RoleFromID(tt.roleID); got != tt.want {
				t.Fatalf("RoleFromID(%d) = %q, want %q", tt.roleID, got, tt.want)
			}
		})
	}
}
