package repository_test

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"bistro_boss/internal/config"
	"bistro_boss/internal/models"
	"bistro_boss/internal/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.OpenDatabase(config.Database{Driver: "sqlite", Source: ":memory:"}, nil)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { config.Close(db) })
	return db
}

func TestCreateUniqueRejectsDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	first := models.User{Name: "Jane", Email: "jane@bistro.test"}
	if err := repo.CreateUnique(ctx, &first); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if first.ID == "" {
		t.Fatal("Expected an id to be assigned")
	}
	if first.Role != models.RoleUser {
		t.Errorf("Expected default role user, got %q", first.Role)
	}

	second := models.User{Name: "Jane again", Email: "jane@bistro.test"}
	err := repo.CreateUnique(ctx, &second)
	if !errors.Is(err, repository.ErrConflict) {
		t.Fatalf("Expected ErrConflict, got %v", err)
	}
	if second.ID != "" {
		t.Errorf("Expected no id for rejected user, got %q", second.ID)
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected exactly one user, got %d", n)
	}
}

func TestPromote(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	u := models.User{Email: "cook@bistro.test"}
	if err := repo.CreateUnique(ctx, &u); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	promoted, err := repo.Promote(ctx, u.ID)
	if err != nil {
		t.Fatalf("Promote failed: %v", err)
	}
	if !promoted.Role.IsAdmin() {
		t.Errorf("Expected admin role, got %q", promoted.Role)
	}

	if _, err := repo.Promote(ctx, "missing-id"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Expected ErrNotFound promoting unknown id, got %v", err)
	}
}

func TestCollectionCRUD(t *testing.T) {
	db := setupTestDB(t)
	menu := repository.NewCollection[models.MenuItem](db)
	ctx := context.Background()

	item := models.MenuItem{Name: "Soup", Category: "soup", Price: 6}
	if err := menu.Create(ctx, &item); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := menu.Get(ctx, item.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != "Soup" {
		t.Errorf("Expected Soup, got %q", got.Name)
	}

	updated, err := menu.Update(ctx, item.ID, map[string]any{"price": 7.5})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Price != 7.5 || updated.Name != "Soup" {
		t.Errorf("Expected partial update to price 7.5, got %+v", updated)
	}

	if _, err := menu.Update(ctx, "nope", map[string]any{"price": 1.0}); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Expected ErrNotFound updating unknown id, got %v", err)
	}
	if _, err := menu.Get(ctx, "nope"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown id, got %v", err)
	}

	list, err := menu.List(ctx, repository.Where("category = ?", "soup"))
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("Expected 1 soup, got %d", len(list))
	}

	n, err := menu.Delete(ctx, item.ID)
	if err != nil || n != 1 {
		t.Errorf("Expected one deleted row, got %d, %v", n, err)
	}
}

func TestDeleteUnknownCartEntryIsNoop(t *testing.T) {
	db := setupTestDB(t)
	carts := repository.NewCartRepository(db)

	n, err := carts.Delete(context.Background(), "does-not-exist")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if n != 0 {
		t.Errorf("Expected zero affected rows, got %d", n)
	}
}

func TestRecordPaymentClearsCart(t *testing.T) {
	db := setupTestDB(t)
	carts := repository.NewCartRepository(db)
	payments := repository.NewPaymentRepository(db)
	ctx := context.Background()

	var paid []string
	for _, name := range []string{"Salad", "Pizza"} {
		e := models.CartEntry{Email: "jane@bistro.test", MenuID: "m-" + name, Name: name, Price: 5}
		if err := carts.Create(ctx, &e); err != nil {
			t.Fatalf("cart create failed: %v", err)
		}
		paid = append(paid, e.ID)
	}
	kept := models.CartEntry{Email: "jane@bistro.test", MenuID: "m-Soup", Name: "Soup", Price: 4}
	if err := carts.Create(ctx, &kept); err != nil {
		t.Fatalf("cart create failed: %v", err)
	}

	p := models.Payment{
		Email:         "jane@bistro.test",
		Price:         10,
		TransactionID: "pi_123",
		CartIDs:       models.IDList(paid),
		MenuItemIDs:   []string{"m-Salad", "m-Pizza"},
	}
	deleted, err := payments.Record(ctx, &p)
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if deleted != 2 {
		t.Errorf("Expected 2 cart entries deleted, got %d", deleted)
	}

	left, err := carts.ListByEmail(ctx, "jane@bistro.test")
	if err != nil {
		t.Fatalf("ListByEmail failed: %v", err)
	}
	if len(left) != 1 || left[0].ID != kept.ID {
		t.Errorf("Expected only the unpaid entry to remain, got %+v", left)
	}

	history, err := payments.ListByEmail(ctx, "jane@bistro.test")
	if err != nil {
		t.Fatalf("payment ListByEmail failed: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("Expected 1 payment, got %d", len(history))
	}
	got := history[0]
	if len(got.CartIDs) != 2 || len(got.MenuItemIDs) != 2 {
		t.Errorf("Expected id lists to round-trip, got cart=%v items=%v", got.CartIDs, got.MenuItemIDs)
	}
	if got.Date.IsZero() {
		t.Error("Expected payment date to default to now")
	}

	other, err := payments.ListByEmail(ctx, "someone@bistro.test")
	if err != nil || len(other) != 0 {
		t.Errorf("Expected no payments for another payer, got %d, %v", len(other), err)
	}
}

func TestRecordPaymentKeepsOtherUsersCart(t *testing.T) {
	db := setupTestDB(t)
	carts := repository.NewCartRepository(db)
	payments := repository.NewPaymentRepository(db)
	ctx := context.Background()

	theirs := models.CartEntry{Email: "jane@bistro.test", MenuID: "m1", Price: 5}
	if err := carts.Create(ctx, &theirs); err != nil {
		t.Fatalf("cart create failed: %v", err)
	}

	p := models.Payment{
		Email:         "mallory@bistro.test",
		Price:         5,
		TransactionID: "pi_999",
		CartIDs:       models.IDList{theirs.ID},
	}
	deleted, err := payments.Record(ctx, &p)
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if deleted != 0 {
		t.Errorf("Expected no entries deleted, got %d", deleted)
	}
	if _, err := carts.Get(ctx, theirs.ID); err != nil {
		t.Errorf("Expected jane's entry to remain, got %v", err)
	}
	if p.MenuItemIDs == nil {
		t.Error("Expected an empty, non-nil item list")
	}
}
