package context_test

import (
	"context"
	"testing"

	"github.com/taskora/client-go/constant"
	"github.com/taskora/client-go/model"
	utilsContext "github.com/taskora/client-go/utils/context"
)

func TestSessionRoundTrip(t *testing.T) {
	state := model.SessionState{
		Token:    "tok1",
		Identity: &model.Identity{ID: 7, RoleID: 3},
		Role:     constant.RoleClient,
	}

	ctx := utilsContext.WithSession(context.Background(), state)
	got, ok := utilsContext.GetSession(ctx)
	if !ok {
		t.Fatal("GetSession() ok = false, want true")
	}
	if got.Token != "tok1" || got.Role != constant.RoleClient || got.Identity.ID != 7 {
		t.Fatalf("state = %+v, want the stored one", got)
	}
}

func TestGetSession_Missing(t *testing.T) {
	if _, ok := utilsContext.GetSession(context.Background()); ok {
		t.Fatal("GetSession() on a bare context must report absence")
	}
}
