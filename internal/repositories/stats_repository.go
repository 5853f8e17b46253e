package repositories

import (
	"gorm.io/gorm"

	"github.com/SSRGNG/ssrg-sub002/internal/models"
)

// AdminStats is the counts card on the admin dashboard.
type AdminStats struct {
	Users        int64 `json:"users"`
	Researchers  int64 `json:"researchers"`
	Authors      int64 `json:"authors"`
	Publications int64 `json:"publications"`
	Videos       int64 `json:"videos"`
	Areas        int64 `json:"areas"`
	Scholarships int64 `json:"scholarships"`
	Events       int64 `json:"events"`
	Teams        int64 `json:"teams"`
	Partners     int64 `json:"partners"`
}

type StatsRepository struct {
	DB *gorm.DB
}

// Collect counts every entity family. Counts run sequentially on one
// connection; the dashboard is not latency sensitive.
func (r *StatsRepository) Collect() (*AdminStats, error) {
	stats := &AdminStats{}
	for _, c := range []struct {
		model any
		dest  *int64
	}{
		{&models.User{}, &stats.Users},
		{&models.Researcher{}, &stats.Researchers},
		{&models.Author{}, &stats.Authors},
		{&models.Publication{}, &stats.Publications},
		{&models.Video{}, &stats.Videos},
		{&models.ResearchArea{}, &stats.Areas},
		{&models.Scholarship{}, &stats.Scholarships},
		{&models.Event{}, &stats.Events},
		{&models.Team{}, &stats.Teams},
		{&models.Partner{}, &stats.Partners},
	} {
		if err := r.DB.Model(c.model).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return stats, nil
}
