package entity

// Photo belongs to exactly one surf spot.
type Photo struct {
	ID         int64
	SurfSpotID int64
	URL        string
}

// SurfBreakType is shared across spots through join rows. Name is unique.
type SurfBreakType struct {
	ID   int64
	Name string
}

// Influencer is shared across spots through join rows.
type Influencer struct {
	ID   int64
	Name string
}
