// Package model contains the GORM persistence models mirroring the database
// tables. Mapping to and from domain entities happens in the repositories.
package model

import "time"

// ProfileModel mirrors the 'profiles' table, one row per rotation day.
// The three totals are only ever overwritten by the aggregator from shard
// sums; nothing increments them in place.
type ProfileModel struct {
	Day      string `gorm:"type:varchar(16);primaryKey"`
	IsSet    bool   `gorm:"not null;default:false"`
	Title    string `gorm:"type:varchar(160);not null"`
	MediaURL string `gorm:"type:text"`
	// LinksJSON stores the up-to-three labeled link/media/text triples as a
	// JSON document; they are always read and written as a whole.
	LinksJSON []byte `gorm:"type:jsonb"`

	ViewCount  int64 `gorm:"not null;default:0"`
	HeartCount int64 `gorm:"not null;default:0"`
	CrossCount int64 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// MetricShardModel mirrors the 'metric_shards' table: N rows per metric per
// day, each a single independently incrementable counter.
type MetricShardModel struct {
	Day        string `gorm:"type:varchar(16);primaryKey"`
	Metric     string `gorm:"type:varchar(8);primaryKey"`
	ShardIndex int    `gorm:"primaryKey;autoIncrement:false"`
	Value      int64  `gorm:"not null;default:0"`

	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MetricShardModel) TableName() string {
	return "metric_shards"
}

// CurrentStateModel mirrors the singleton 'current_state' row pointing at
// the live profile day and auction day.
type CurrentStateModel struct {
	ID         int    `gorm:"primaryKey;autoIncrement:false"`
	ProfileDay string `gorm:"type:varchar(16);not null"`
	AuctionDay string `gorm:"type:varchar(16)"`

	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CurrentStateModel) TableName() string {
	return "current_state"
}

// CurrentStateID is the fixed primary key of the singleton row.
const CurrentStateID = 1
