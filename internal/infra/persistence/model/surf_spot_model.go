package model

import "time"

// SurfSpotModel is the GORM-specific struct for the 'SurfSpot' table.
type SurfSpotModel struct {
	SurfSpotID       int64      `gorm:"column:surf_spot_id;primaryKey;autoIncrement"`
	Destination      string     `gorm:"column:destination;type:varchar(255);not null;uniqueIndex:idx_surf_spot_destination_address"`
	Address          string     `gorm:"column:address;type:varchar(255);not null;uniqueIndex:idx_surf_spot_destination_address"`
	StateCountry     *string    `gorm:"column:state_country;type:varchar(255)"`
	DifficultyLevel  *int       `gorm:"column:difficulty_level;check:chk_surf_spot_difficulty_level,difficulty_level BETWEEN 1 AND 5"`
	PeakSeasonBegin  *time.Time `gorm:"column:peak_season_begin;type:date"`
	PeakSeasonEnd    *time.Time `gorm:"column:peak_season_end;type:date"`
	MagicSeaweedLink *string    `gorm:"column:magic_seaweed_link;type:varchar(512)"`
	CreatedTime      *time.Time `gorm:"column:created_time"`
	GeocodeRaw       *string    `gorm:"column:geocode_raw;type:text"`
}

// TableName explicitly sets the table name for GORM.
func (SurfSpotModel) TableName() string {
	return "SurfSpot"
}
