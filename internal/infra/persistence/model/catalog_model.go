package model

// PhotoModel is the GORM-specific struct for the 'Photo' table.
type PhotoModel struct {
	PhotoID    int64   `gorm:"column:photo_id;primaryKey;autoIncrement"`
	SurfSpotID int64   `gorm:"column:surf_spot_id;not null;index:idx_photo_surf_spot"`
	URL        *string `gorm:"column:url;type:varchar(1024)"`

	SurfSpot *SurfSpotModel `gorm:"foreignKey:SurfSpotID;references:SurfSpotID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PhotoModel) TableName() string {
	return "Photo"
}

// SurfBreakTypeModel is the GORM-specific struct for the 'SurfBreakType' table.
type SurfBreakTypeModel struct {
	SurfBreakTypeID int64  `gorm:"column:surf_break_type_id;primaryKey;autoIncrement"`
	Name            string `gorm:"column:surf_break_type_name;type:varchar(255);not null;uniqueIndex:idx_surf_break_type_name"`
}

// TableName explicitly sets the table name for GORM.
func (SurfBreakTypeModel) TableName() string {
	return "SurfBreakType"
}

// InfluencerModel is the GORM-specific struct for the 'Influencer' table.
type InfluencerModel struct {
	InfluencerID int64   `gorm:"column:influencer_id;primaryKey;autoIncrement"`
	Name         *string `gorm:"column:influencer_name;type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (InfluencerModel) TableName() string {
	return "Influencer"
}

// SurfSpotSurfBreakTypeModel is a join row; the composite key makes each pair unique.
type SurfSpotSurfBreakTypeModel struct {
	SurfSpotID      int64 `gorm:"column:surf_spot_id;primaryKey;autoIncrement:false"`
	SurfBreakTypeID int64 `gorm:"column:surf_break_type_id;primaryKey;autoIncrement:false"`

	SurfSpot      *SurfSpotModel     `gorm:"foreignKey:SurfSpotID;references:SurfSpotID;constraint:OnDelete:CASCADE"`
	SurfBreakType SurfBreakTypeModel `gorm:"foreignKey:SurfBreakTypeID;references:SurfBreakTypeID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (SurfSpotSurfBreakTypeModel) TableName() string {
	return "SurfSpot_SurfBreakType"
}

// SurfSpotInfluencerModel is a join row; the composite key makes each pair unique.
type SurfSpotInfluencerModel struct {
	SurfSpotID   int64 `gorm:"column:surf_spot_id;primaryKey;autoIncrement:false"`
	InfluencerID int64 `gorm:"column:influencer_id;primaryKey;autoIncrement:false"`

	SurfSpot   *SurfSpotModel  `gorm:"foreignKey:SurfSpotID;references:SurfSpotID;constraint:OnDelete:CASCADE"`
	Influencer InfluencerModel `gorm:"foreignKey:InfluencerID;references:InfluencerID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (SurfSpotInfluencerModel) TableName() string {
	return "SurfSpot_Influencer"
}

// All lists every model in dependency order, parents first.
func All() []any {
	return []any{
		&SurfSpotModel{},
		&SurfBreakTypeModel{},
		&InfluencerModel{},
		&PhotoModel{},
		&SurfSpotSurfBreakTypeModel{},
		&SurfSpotInfluencerModel{},
	}
}
