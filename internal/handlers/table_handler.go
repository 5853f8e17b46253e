package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/SSRGNG/ssrg-sub002/internal/datatable"
	"github.com/SSRGNG/ssrg-sub002/internal/models"
	"github.com/SSRGNG/ssrg-sub002/internal/utils"
)

func publicationTypeOptions() []datatable.Option {
	types := []models.PublicationType{
		models.PubJournalArticle,
		models.PubConferencePaper,
		models.PubBookChapter,
		models.PubWorkingPaper,
		models.PubReport,
	}
	opts := make([]datatable.Option, 0, len(types))
	for _, t := range types {
		opts = append(opts, datatable.Option{Label: t.Label(), Value: string(t), WithCount: true})
	}
	return opts
}

// ResearchersTableHandler renders the admin researchers table. Query
// parameters drive filtering, sorting, visibility and paging.
func (h *AdminHandler) ResearchersTableHandler(w http.ResponseWriter, r *http.Request) {
	researchers, err := h.Teams.ListResearchers()
	if err != nil {
		h.Logger.Error("failed to list researchers", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch researchers")
		return
	}

	columns := []datatable.Column[models.Researcher]{
		{ID: "name", Header: "Name", Sortable: true, Value: func(res models.Researcher) string { return res.User.Name }},
		{ID: "email", Header: "Email", Value: func(res models.Researcher) string { return res.User.Email }},
		{ID: "title", Header: "Title", Sortable: true, Value: func(res models.Researcher) string { return res.Title }},
		{ID: "orcid", Header: "ORCID", Hidden: true, Value: func(res models.Researcher) string { return res.ORCID }},
		{ID: "featured", Header: "Featured", Value: func(res models.Researcher) string {
			if res.Featured {
				return "yes"
			}
			return "no"
		}},
		{ID: "areas", Header: "Areas", Value: func(res models.Researcher) string {
			names := make([]string, 0, len(res.Areas))
			for _, a := range res.Areas {
				names = append(names, a.Title)
			}
			return strings.Join(names, ", ")
		}},
	}
	fields := []datatable.FilterField[models.Researcher]{
		{Label: "Name", Value: "name", Placeholder: "Search researchers..."},
		{Label: "Title", Value: "title", Placeholder: "Filter by title..."},
		{Label: "Featured", Value: "featured", Options: []datatable.Option{
			{Label: "Featured", Value: "yes"},
			{Label: "Not featured", Value: "no"},
		}},
	}

	tbl := datatable.New(researchers, columns,
		func(res models.Researcher) string { return strconv.FormatUint(uint64(res.ID), 10) },
		datatable.WithFilterFields(fields))
	tbl.ApplyQuery(r.URL.Query())
	utils.JSON(w, http.StatusOK, tbl.Render())
}

// PublicationsTableHandler renders the admin publications table.
func (h *AdminHandler) PublicationsTableHandler(w http.ResponseWriter, r *http.Request) {
	pubs, err := h.Publications.GetAll()
	if err != nil {
		h.Logger.Error("failed to list publications", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch publications")
		return
	}

	columns := []datatable.Column[models.Publication]{
		{ID: "title", Header: "Title", Sortable: true, Value: func(p models.Publication) string { return p.Title }},
		{ID: "type", Header: "Type", Value: func(p models.Publication) string { return string(p.Type) }},
		{ID: "date", Header: "Published", Sortable: true, Value: func(p models.Publication) string { return p.PublicationDate }},
		{ID: "venue", Header: "Venue", Hidden: true, Value: func(p models.Publication) string { return p.Venue }},
		{ID: "doi", Header: "DOI", Hidden: true, Value: func(p models.Publication) string { return p.DOI }},
		{ID: "citations", Header: "Citations", Sortable: true, Value: func(p models.Publication) string {
			if p.CitationCount == nil {
				return ""
			}
			return strconv.Itoa(*p.CitationCount)
		}},
		{ID: "authors", Header: "Authors", Value: func(p models.Publication) string {
			names := make([]string, 0, len(p.Authors))
			for _, a := range p.Authors {
				names = append(names, a.Name)
			}
			return strings.Join(names, ", ")
		}},
	}
	fields := []datatable.FilterField[models.Publication]{
		{Label: "Title", Value: "title", Placeholder: "Search publications..."},
		{Label: "Type", Value: "type", Options: publicationTypeOptions()},
	}

	tbl := datatable.New(pubs, columns,
		func(p models.Publication) string { return strconv.FormatUint(uint64(p.ID), 10) },
		datatable.WithFilterFields(fields))
	tbl.ApplyQuery(r.URL.Query())
	utils.JSON(w, http.StatusOK, tbl.Render())
}
