package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/clockline/timetrack-api/internal/core/domain"
	"github.com/clockline/timetrack-api/internal/core/ports"
)

func newUserService(users *stubUserRepo, times *stubTimeRepo, renderer *stubRenderer) *UserService {
	return NewUserService(users, times, renderer, zerolog.Nop())
}

func TestUserService_List_RankVisibility(t *testing.T) {
	users := newStubUserRepo()
	users.add("root", domain.RoleSuperadmin, "root@example.com")
	users.add("adm", domain.RoleAdmin, "adm@example.com")
	users.add("mgr", domain.RoleUserManager, "mgr@example.com")
	users.add("w1", domain.RoleUser, "w1@example.com")
	users.add("w2", domain.RoleUser, "w2@example.com")
	svc := newUserService(users, newStubTimeRepo(), &stubRenderer{})

	result, err := svc.List(context.Background(), ports.ListUsersInput{
		Actor: domain.Actor{ID: "mgr", Role: domain.RoleUserManager},
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Total != 2 {
		t.Fatalf("user manager should see exactly the plain users, total=%d", result.Total)
	}
	for _, u := range result.Items {
		if u.Role != domain.RoleUser {
			t.Fatalf("unexpected role in listing: %v", u.Role)
		}
	}
}

func TestUserService_List_Paginated(t *testing.T) {
	users := newStubUserRepo()
	users.add("adm", domain.RoleAdmin, "adm@example.com")
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		users.add(id, domain.RoleUser, id+"@example.com")
	}
	svc := newUserService(users, newStubTimeRepo(), &stubRenderer{})

	result, err := svc.List(context.Background(), ports.ListUsersInput{
		Actor: domain.Actor{ID: "adm", Role: domain.RoleAdmin},
		Page:  2,
		Limit: 2,
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Total != 5 {
		t.Fatalf("total should count all visible users, got %d", result.Total)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items on page 2, got %d", len(result.Items))
	}
	if result.Items[0].Email != "c@example.com" {
		t.Fatalf("unexpected page start: %s", result.Items[0].Email)
	}
}

func TestUserService_Create_RoleGate(t *testing.T) {
	users := newStubUserRepo()
	svc := newUserService(users, newStubTimeRepo(), &stubRenderer{})
	admin := domain.Actor{ID: "adm", Role: domain.RoleAdmin}

	created, err := svc.Create(context.Background(), ports.CreateUserInput{
		Actor:     admin,
		FirstName: "Hank",
		LastName:  "Moore",
		Email:     "hank@example.com",
		Password:  "pass123",
		Role:      domain.RoleUserManager,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Role != domain.RoleUserManager {
		t.Fatalf("unexpected role: %v", created.Role)
	}

	_, err = svc.Create(context.Background(), ports.CreateUserInput{
		Actor:     admin,
		FirstName: "Iris",
		LastName:  "West",
		Email:     "iris@example.com",
		Password:  "pass123",
		Role:      domain.RoleAdmin,
	})
	if !errors.Is(err, domain.ErrRoleNotAssignable) {
		t.Fatalf("admin must not create a peer admin, got %v", err)
	}
}

func TestUserService_Get_RankGate(t *testing.T) {
	users := newStubUserRepo()
	users.add("adm", domain.RoleAdmin, "adm@example.com")
	users.add("adm2", domain.RoleAdmin, "adm2@example.com")
	users.add("w1", domain.RoleUser, "w1@example.com")
	svc := newUserService(users, newStubTimeRepo(), &stubRenderer{})
	admin := domain.Actor{ID: "adm", Role: domain.RoleAdmin}

	if _, err := svc.Get(context.Background(), admin, "w1"); err != nil {
		t.Fatalf("downward get should pass: %v", err)
	}
	if _, err := svc.Get(context.Background(), admin, "adm"); err != nil {
		t.Fatalf("self get should pass: %v", err)
	}
	if _, err := svc.Get(context.Background(), admin, "adm2"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("lateral get must be forbidden, got %v", err)
	}
	if _, err := svc.Get(context.Background(), admin, "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("missing target must surface not found, got %v", err)
	}
}

func TestUserService_Update_RoleEscalationDenied(t *testing.T) {
	users := newStubUserRepo()
	users.add("mgr", domain.RoleUserManager, "mgr@example.com")
	users.add("w1", domain.RoleUser, "w1@example.com")
	svc := newUserService(users, newStubTimeRepo(), &stubRenderer{})
	mgr := domain.Actor{ID: "mgr", Role: domain.RoleUserManager}

	role := domain.RoleUserManager
	_, err := svc.Update(context.Background(), ports.UpdateUserInput{
		Actor:    mgr,
		TargetID: "w1",
		Role:     &role,
	})
	if !errors.Is(err, domain.ErrRoleNotAssignable) {
		t.Fatalf("user manager must not promote to its own rank, got %v", err)
	}

	name := "Walt"
	updated, err := svc.Update(context.Background(), ports.UpdateUserInput{
		Actor:     mgr,
		TargetID:  "w1",
		FirstName: &name,
	})
	if err != nil {
		t.Fatalf("plain update should pass: %v", err)
	}
	if updated.FirstName != "Walt" {
		t.Fatalf("first name not applied: %q", updated.FirstName)
	}
}

func TestUserService_Delete_CascadesEntries(t *testing.T) {
	users := newStubUserRepo()
	users.add("adm", domain.RoleAdmin, "adm@example.com")
	users.add("w1", domain.RoleUser, "w1@example.com")
	times := newStubTimeRepo()
	times.add("e1", "w1", "2024-03-01", 8)
	times.add("e2", "w1", "2024-03-02", 6)
	times.add("e3", "adm", "2024-03-01", 4)
	svc := newUserService(users, times, &stubRenderer{})

	if err := svc.Delete(context.Background(), domain.Actor{ID: "adm", Role: domain.RoleAdmin}, "w1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := users.FindByID(context.Background(), "w1"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("user should be gone, got %v", err)
	}
	if _, err := times.FindByID(context.Background(), "e1"); !errors.Is(err, domain.ErrTimeEntryNotFound) {
		t.Fatalf("owned entry should be gone, got %v", err)
	}
	if _, err := times.FindByID(context.Background(), "e3"); err != nil {
		t.Fatalf("other owner's entry must survive: %v", err)
	}
}

func TestUserService_Export(t *testing.T) {
	users := newStubUserRepo()
	users.add("adm", domain.RoleAdmin, "adm@example.com")
	users.add("w1", domain.RoleUser, "w1@example.com")
	renderer := &stubRenderer{}
	svc := newUserService(users, newStubTimeRepo(), renderer)

	file, err := svc.Export(context.Background(), domain.Actor{ID: "adm", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if file == nil || len(file.Data) == 0 {
		t.Fatalf("expected rendered file")
	}
	if len(renderer.userItems) != 1 || renderer.userItems[0].ID != "w1" {
		t.Fatalf("renderer should receive the visible roster, got %+v", renderer.userItems)
	}
}
