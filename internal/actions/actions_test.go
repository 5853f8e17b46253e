package actions

import (
	"testing"

	"github.com/SSRGNG/ssrg-sub002/internal/models"
	"github.com/SSRGNG/ssrg-sub002/internal/testhelpers"
	"github.com/SSRGNG/ssrg-sub002/internal/validation"
)

func newActions(t *testing.T) *Actions {
	t.Helper()
	return New(testhelpers.SetupTestDB(t), nil)
}

func researcherInput() validation.RegisterInput {
	return validation.RegisterInput{
		Name:            "Ada Obi",
		Email:           "ada@example.org",
		Password:        "correct-horse",
		ConfirmPassword: "correct-horse",
		Role:            models.RoleResearcher,
		Title:           "Senior Research Fellow",
		Bio:             "Survey methodology.",
		Expertise:       []string{"survey design", "sampling"},
		Education:       []string{"PhD Sociology, UI"},
	}
}

func TestRegisterUser_ResearcherWritesAllRows(t *testing.T) {
	a := newActions(t)

	res := a.RegisterUser(researcherInput())
	if !res.Success {
		t.Fatalf("expected success, got %+v", res)
	}

	var user models.User
	if err := a.DB.First(&user, "email = ?", "ada@example.org").Error; err != nil {
		t.Fatalf("user row missing: %v", err)
	}
	var researcher models.Researcher
	if err := a.DB.First(&researcher, "user_id = ?", user.ID).Error; err != nil {
		t.Fatalf("researcher row missing: %v", err)
	}
	var expertise int64
	a.DB.Model(&models.Expertise{}).Where("researcher_id = ?", researcher.ID).Count(&expertise)
	if expertise != 2 {
		t.Fatalf("expected 2 expertise rows, got %d", expertise)
	}
	var education int64
	a.DB.Model(&models.Education{}).Where("researcher_id = ?", researcher.ID).Count(&education)
	if education != 1 {
		t.Fatalf("expected 1 education row, got %d", education)
	}
}

// A bad child reference must roll the parent back too: no partial writes.
func TestRegisterUser_RollbackOnBadAreaID(t *testing.T) {
	a := newActions(t)

	in := researcherInput()
	in.AreaIDs = []uint{999}
	res := a.RegisterUser(in)
	if res.Success {
		t.Fatalf("expected failure for unknown area id")
	}

	var users int64
	a.DB.Model(&models.User{}).Count(&users)
	if users != 0 {
		t.Fatalf("user row survived a rolled-back transaction")
	}
	var researchers int64
	a.DB.Model(&models.Researcher{}).Count(&researchers)
	if researchers != 0 {
		t.Fatalf("researcher row survived a rolled-back transaction")
	}
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	a := newActions(t)
	if res := a.RegisterUser(researcherInput()); !res.Success {
		t.Fatalf("seed registration failed: %+v", res)
	}
	res := a.RegisterUser(researcherInput())
	if res.Success || res.Code != CodeConflict {
		t.Fatalf("expected conflict, got %+v", res)
	}
}

func TestRegisterUser_ValidationNoWrites(t *testing.T) {
	a := newActions(t)
	in := researcherInput()
	in.ConfirmPassword = "different"
	res := a.RegisterUser(in)
	if res.Success || res.Code != CodeValidation {
		t.Fatalf("expected validation failure, got %+v", res)
	}
	if len(res.FieldErrors["confirm_password"]) == 0 {
		t.Fatalf("expected field error map, got %v", res.FieldErrors)
	}
	var users int64
	a.DB.Model(&models.User{}).Count(&users)
	if users != 0 {
		t.Fatalf("validation failure must not write")
	}
}

func TestCreateResearchArea_AdminGate(t *testing.T) {
	a := newActions(t)
	in := validation.ResearchAreaInput{Title: "Urban Migration", Slug: "urban-migration"}

	res := a.CreateResearchArea(models.RoleResearcher, in)
	if res.Success || res.Code != CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %+v", res)
	}

	res = a.CreateResearchArea(models.RoleAdmin, in)
	if !res.Success {
		t.Fatalf("expected success for admin, got %+v", res)
	}
}

func TestCreateResearchArea_WithQuestionsAndConflict(t *testing.T) {
	a := newActions(t)
	in := validation.ResearchAreaInput{
		Title:     "Public Health",
		Slug:      "public-health",
		Questions: []string{"What do we study?", "Who funds this?"},
	}
	if res := a.CreateResearchArea(models.RoleAdmin, in); !res.Success {
		t.Fatalf("create failed: %+v", res)
	}

	var questions int64
	a.DB.Model(&models.AreaQuestion{}).Count(&questions)
	if questions != 2 {
		t.Fatalf("expected 2 question rows, got %d", questions)
	}

	res := a.CreateResearchArea(models.RoleAdmin, in)
	if res.Success || res.Code != CodeConflict {
		t.Fatalf("expected slug conflict, got %+v", res)
	}
}

func TestCreateTeam_WithMembers(t *testing.T) {
	a := newActions(t)
	in := validation.TeamInput{
		Name: "Field Operations",
		Members: []validation.MemberInput{
			{Name: "Tunde Alade", Title: "Coordinator"},
			{Name: "Ngozi Eze"},
		},
	}
	res := a.CreateTeam(models.RoleAdmin, in)
	if !res.Success {
		t.Fatalf("create failed: %+v", res)
	}
	var members int64
	a.DB.Model(&models.Member{}).Count(&members)
	if members != 2 {
		t.Fatalf("expected 2 member rows, got %d", members)
	}
}

func TestCreatePublication_RollbackOnBadAuthor(t *testing.T) {
	a := newActions(t)
	in := validation.PublicationInput{
		Title:     "Informal Settlements and Health Outcomes",
		Type:      models.PubJournalArticle,
		AuthorIDs: []uint{42},
	}
	res := a.CreatePublication(models.RoleAdmin, in)
	if res.Success {
		t.Fatalf("expected failure for unknown author id")
	}
	var pubs int64
	a.DB.Model(&models.Publication{}).Count(&pubs)
	if pubs != 0 {
		t.Fatalf("publication row survived a rolled-back transaction")
	}
}

func TestCreateAuthor_Conflict(t *testing.T) {
	a := newActions(t)
	in := validation.AuthorInput{Name: "Kemi Ade", Email: "kemi@example.org"}

	if res := a.CreateAuthor(in); !res.Success {
		t.Fatalf("create failed: %+v", res)
	}
	res := a.CreateAuthor(in)
	if res.Success || res.Code != CodeConflict {
		t.Fatalf("expected conflict, got %+v", res)
	}
}

func TestSubscribeNewsletter(t *testing.T) {
	a := newActions(t)

	t.Run("standalone subscriber", func(t *testing.T) {
		res := a.SubscribeNewsletter(validation.NewsletterInput{Email: "reader@example.org"})
		if !res.Success {
			t.Fatalf("subscribe failed: %+v", res)
		}
		res = a.SubscribeNewsletter(validation.NewsletterInput{Email: "reader@example.org"})
		if res.Success || res.Code != CodeConflict {
			t.Fatalf("expected conflict on resubscribe, got %+v", res)
		}
	})

	t.Run("portal account flag", func(t *testing.T) {
		if res := a.RegisterUser(researcherInput()); !res.Success {
			t.Fatalf("seed registration failed: %+v", res)
		}
		res := a.SubscribeNewsletter(validation.NewsletterInput{Email: "ada@example.org"})
		if !res.Success {
			t.Fatalf("subscribe failed: %+v", res)
		}
		var user models.User
		a.DB.First(&user, "email = ?", "ada@example.org")
		if !user.Newsletter {
			t.Fatalf("newsletter flag not set")
		}
		res = a.SubscribeNewsletter(validation.NewsletterInput{Email: "ada@example.org"})
		if res.Success || res.Code != CodeConflict {
			t.Fatalf("expected conflict, got %+v", res)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		res := a.SubscribeNewsletter(validation.NewsletterInput{Email: "nope"})
		if res.Success || res.Code != CodeValidation {
			t.Fatalf("expected validation failure, got %+v", res)
		}
	})
}

func TestUpdateResearcherProfile_ReplacesLists(t *testing.T) {
	a := newActions(t)
	if res := a.RegisterUser(researcherInput()); !res.Success {
		t.Fatalf("seed registration failed: %+v", res)
	}
	var user models.User
	a.DB.First(&user, "email = ?", "ada@example.org")

	in := researcherInput()
	in.Title = "Principal Investigator"
	in.Expertise = []string{"ethnography"}
	in.Education = nil
	res := a.UpdateResearcherProfile(user.ID, in)
	if !res.Success {
		t.Fatalf("update failed: %+v", res)
	}

	var researcher models.Researcher
	a.DB.First(&researcher, "user_id = ?", user.ID)
	if researcher.Title != "Principal Investigator" {
		t.Fatalf("title not updated: %q", researcher.Title)
	}
	var expertise int64
	a.DB.Model(&models.Expertise{}).Where("researcher_id = ?", researcher.ID).Count(&expertise)
	if expertise != 1 {
		t.Fatalf("expected the replaced expertise list, got %d rows", expertise)
	}
}
