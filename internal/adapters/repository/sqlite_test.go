package repository_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	repository "github.com/okian/courtside/internal/adapters/repository"
	. "github.com/smartystreets/goconvey/convey"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const gameSchema = `CREATE TABLE Game (
	team_abbreviation_home TEXT,
	team_abbreviation_away TEXT,
	game_date TEXT,
	wl_home TEXT,
	wl_away TEXT,
	fg_pct_home REAL,
	fg_pct_away REAL,
	fg3_pct_home REAL,
	fg3_pct_away REAL,
	reb_home REAL,
	reb_away REAL,
	ast_home REAL,
	ast_away REAL,
	tov_home REAL,
	tov_away REAL
)`

type gameRow struct {
	home, away, date, wlHome string
	fgH, fgA, fg3H, fg3A     float64
	rebH, rebA, astH, astA   float64
	tovH, tovA               float64
}

// seedGames writes a small season to a fresh sqlite file and returns its URL.
func seedGames(t *testing.T, rows []gameRow) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "games.sqlite")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		t.Fatalf("open seed db: %v", err)
	}
	if err := db.Exec(gameSchema).Error; err != nil {
		t.Fatalf("create schema: %v", err)
	}
	for _, r := range rows {
		wlAway := "W"
		if r.wlHome == "W" {
			wlAway = "L"
		}
		err := db.Exec(`INSERT INTO Game VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
			r.home, r.away, r.date, r.wlHome, wlAway,
			r.fgH, r.fgA, r.fg3H, r.fg3A, r.rebH, r.rebA, r.astH, r.astA, r.tovH, r.tovA).Error
		if err != nil {
			t.Fatalf("insert game: %v", err)
		}
	}
	sqlDB, _ := db.DB()
	_ = sqlDB.Close()
	return "sqlite:" + path
}

func TestGormStore_Sqlite(t *testing.T) {
	Convey("Given a sqlite season with BOS and LAL games", t, func() {
		url := seedGames(t, []gameRow{
			{"BOS", "MIA", "2022-02-01", "W", 0.50, 0.40, 0.40, 0.30, 46, 40, 28, 20, 12, 15},
			{"BOS", "NYK", "2022-03-01", "L", 0.40, 0.45, 0.30, 0.35, 42, 44, 22, 24, 14, 13},
			{"MIA", "BOS", "2022-04-01", "L", 0.44, 0.48, 0.33, 0.38, 41, 45, 23, 27, 16, 11},
			{"DEN", "LAL", "2022-02-10", "L", 0.45, 0.47, 0.35, 0.36, 43, 44, 25, 26, 13, 14},
			{"PHX", "LAL", "2022-05-10", "L", 0.49, 0.43, 0.37, 0.31, 45, 41, 27, 23, 12, 15},
			{"BOS", "LAL", "2021-12-25", "W", 0.90, 0.10, 0.90, 0.10, 90, 10, 90, 10, 90, 10},
		})

		store, err := repository.Open(context.Background(), url)
		So(err, ShouldBeNil)
		Reset(func() { _ = store.Close() })

		Convey("When aggregating BOS at home against LAL away", func() {
			home, away, err := store.SideAggregates(context.Background(), "BOS", "LAL")

			Convey("Then each side should only average its own appearances inside the window", func() {
				So(err, ShouldBeNil)
				So(home.FGPct, ShouldAlmostEqual, 0.45, 1e-9)
				So(home.Reb, ShouldAlmostEqual, 44, 1e-9)
				So(home.WinRatio, ShouldAlmostEqual, 0.5, 1e-9)
				So(away.FGPct, ShouldAlmostEqual, 0.45, 1e-9)
				So(away.Ast, ShouldAlmostEqual, 24.5, 1e-9)
				So(away.WinRatio, ShouldAlmostEqual, 1.0, 1e-9)
			})
		})

		Convey("When the home team never played at home in the window", func() {
			_, _, err := store.SideAggregates(context.Background(), "LAL", "BOS")

			Convey("Then it should report no data", func() {
				So(errors.Is(err, repository.ErrNoData), ShouldBeTrue)
			})
		})

		Convey("When reading win ratios over either appearance", func() {
			ratios, err := store.WinRatios(context.Background(), "BOS", "LAL")

			Convey("Then both columns should be averaged over the OR-combined rows", func() {
				So(err, ShouldBeNil)
				// BOS-MIA, BOS-NYK, DEN-LAL and PHX-LAL qualify; MIA-BOS does not.
				So(ratios.Home, ShouldAlmostEqual, 0.25, 1e-9)
				So(ratios.Away, ShouldAlmostEqual, 0.75, 1e-9)
			})
		})
	})
}
