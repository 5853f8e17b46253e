package repositories

import (
	"testing"

	"github.com/google/uuid"

	"github.com/SSRGNG/ssrg-sub002/internal/models"
	"github.com/SSRGNG/ssrg-sub002/internal/testhelpers"
)

func TestAuthorRepository_Search(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := &AuthorRepository{DB: db}

	user := models.User{
		PublicID:     uuid.NewString(),
		Name:         "Amina Yusuf",
		Email:        "amina@example.org",
		PasswordHash: "hash",
		Role:         models.RoleResearcher,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	if err := db.Create(&models.Researcher{UserID: user.ID, Title: "Fellow"}).Error; err != nil {
		t.Fatalf("failed to seed researcher: %v", err)
	}
	if err := db.Create(&models.Author{
		PublicID: uuid.NewString(), Name: "Aminatu Bello", Email: "bello@example.org",
	}).Error; err != nil {
		t.Fatalf("failed to seed author: %v", err)
	}

	t.Run("matches both kinds, researchers first", func(t *testing.T) {
		results, err := repo.Search("amina", 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 2 {
			t.Fatalf("expected 2 results, got %d", len(results))
		}
		if results[0].Type != "researcher" || results[1].Type != "author" {
			t.Fatalf("unexpected ordering: %+v", results)
		}
	})

	t.Run("limit is shared across kinds", func(t *testing.T) {
		results, err := repo.Search("amina", 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 || results[0].Type != "researcher" {
			t.Fatalf("expected the single researcher hit, got %+v", results)
		}
	})

	t.Run("no matches", func(t *testing.T) {
		results, err := repo.Search("zzz", 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 0 {
			t.Fatalf("expected no results, got %+v", results)
		}
	})
}

func TestAuthorRepository_GetByEmail(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := &AuthorRepository{DB: db}

	if _, err := repo.GetByEmail("missing@example.org"); err != ErrAuthorNotFound {
		t.Fatalf("expected ErrAuthorNotFound, got %v", err)
	}

	author := models.Author{PublicID: uuid.NewString(), Name: "Kemi Ade", Email: "kemi@example.org"}
	if err := db.Create(&author).Error; err != nil {
		t.Fatalf("failed to seed author: %v", err)
	}
	got, err := repo.GetByEmail("kemi@example.org")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != author.ID {
		t.Fatalf("expected id %d, got %d", author.ID, got.ID)
	}
}
