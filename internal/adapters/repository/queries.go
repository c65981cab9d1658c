package repository

// Query names used in metrics and logs.
const (
	querySideAggregates = "side_aggregates"
	queryWinRatios      = "win_ratios"
)

// sideAggregatesSQL cross joins two independent single-row aggregates: the
// home team over its home games and the away team over its away games.
// Args: home, start, end, away, start, end.
const sideAggregatesSQL = `
SELECT
	t1.fg_pct_home,
	t2.fg_pct_away,
	t1.fg3_pct_home,
	t2.fg3_pct_away,
	t1.reb_home,
	t2.reb_away,
	t1.ast_home,
	t2.ast_away,
	t1.tov_home,
	t2.tov_away,
	t1.win_ratio_home,
	t2.win_ratio_away
FROM
	(SELECT
		avg(fg_pct_home) AS fg_pct_home,
		avg(fg3_pct_home) AS fg3_pct_home,
		avg(reb_home) AS reb_home,
		avg(ast_home) AS ast_home,
		avg(tov_home) AS tov_home,
		avg(CASE WHEN wl_home = 'W' THEN 1 ELSE 0 END) AS win_ratio_home
	FROM Game
	WHERE team_abbreviation_home = ?
	AND game_date BETWEEN ? AND ?) AS t1
CROSS JOIN
	(SELECT
		avg(fg_pct_away) AS fg_pct_away,
		avg(fg3_pct_away) AS fg3_pct_away,
		avg(reb_away) AS reb_away,
		avg(ast_away) AS ast_away,
		avg(tov_away) AS tov_away,
		avg(CASE WHEN wl_away = 'W' THEN 1 ELSE 0 END) AS win_ratio_away
	FROM Game
	WHERE team_abbreviation_away = ?
	AND game_date BETWEEN ? AND ?) AS t2`

// winRatiosSQL averages both win indicators over the union of the two
// appearance scopes. Args: home, start, end, away, start, end.
const winRatiosSQL = `
SELECT
	avg(CASE WHEN wl_home = 'W' THEN 1 ELSE 0 END) AS win_ratio_home,
	avg(CASE WHEN wl_away = 'W' THEN 1 ELSE 0 END) AS win_ratio_away
FROM Game
WHERE (team_abbreviation_home = ? AND game_date BETWEEN ? AND ?)
OR (team_abbreviation_away = ? AND game_date BETWEEN ? AND ?)`
