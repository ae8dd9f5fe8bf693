package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafiq2704/FutsalManagerApp/internal/futsal"
	"github.com/rafiq2704/FutsalManagerApp/internal/util/sliceutil"
	"github.com/rafiq2704/FutsalManagerApp/internal/util/timeutil"
)

// AddMatchScore records one goal by the player for the team. The team must be
// one of the sides of the match.
func (d *DB) AddMatchScore(ctx context.Context, tournamentID, matchID, teamID, playerID, remark string) (uuid.UUID, error) {
	ids, err := parseIDs("tournament", tournamentID, "match", matchID, "team", teamID, "player", playerID)
	if err != nil {
		return uuid.Nil, err
	}
	score := futsal.Score{
		TournamentID: ids[0],
		MatchID:      ids[1],
		TeamID:       ids[2],
		PlayerID:     ids[3],
		Remark:       strings.TrimSpace(remark),
	}
	if err := score.Validate(); err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var matches []Match
		err := tx.Where("id = ? AND tournament_id = ?", score.MatchID, score.TournamentID).
			Limit(1).
			Find(&matches).Error
		if err != nil {
			return fmt.Errorf("get match: %w", err)
		}
		if len(matches) == 0 {
			return fmt.Errorf("%w: match %v in tournament %v", futsal.ErrNotFound, score.MatchID, score.TournamentID)
		}
		if m := matches[0]; score.TeamID != m.HomeTeamID && score.TeamID != m.AwayTeamID {
			return fmt.Errorf("%w: team %v does not play in match %v", futsal.ErrInvalidArgument, score.TeamID, m.ID)
		}
		if err := d.mustExist(tx, &Player{}, score.PlayerID, "player", futsal.ErrNotFound); err != nil {
			return err
		}

		id = d.newID()
		err = tx.Create(&Score{
			ID:           id,
			TournamentID: score.TournamentID,
			MatchID:      score.MatchID,
			TeamID:       score.TeamID,
			PlayerID:     score.PlayerID,
			Remark:       score.Remark,
			RecordedAt:   timeutil.NowUTC(),
		}).Error
		if err != nil {
			return fmt.Errorf("create score: %w", err)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (d *DB) GetTotalScoresByMatchTeam(ctx context.Context, tournamentID, matchID, teamID string) (int64, error) {
	ids, err := parseIDs("tournament", tournamentID, "match", matchID, "team", teamID)
	if err != nil {
		return 0, err
	}
	var cnt int64
	err = d.db.WithContext(ctx).Model(&Score{}).
		Where("tournament_id = ? AND match_id = ? AND team_id = ?", ids[0], ids[1], ids[2]).
		Count(&cnt).Error
	if err != nil {
		return 0, fmt.Errorf("count scores: %w", err)
	}
	return cnt, nil
}

func (d *DB) GetScoresByMatch(ctx context.Context, tournamentID, matchID string) ([]futsal.Score, error) {
	ids, err := parseIDs("tournament", tournamentID, "match", matchID)
	if err != nil {
		return nil, err
	}
	var rows []Score
	err = d.db.WithContext(ctx).
		Where("tournament_id = ? AND match_id = ?", ids[0], ids[1]).
		Order("recorded_at").
		Order("rowid").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}
	return sliceutil.Map(rows, Score.toDomain), nil
}

func (d *DB) DeleteScore(ctx context.Context, scoreID string) error {
	id, err := futsal.ParseID("score", scoreID)
	if err != nil {
		return err
	}
	res := d.db.WithContext(ctx).Where("id = ?", id).Delete(&Score{})
	if res.Error != nil {
		return fmt.Errorf("delete score: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: score %v", futsal.ErrNotFound, id)
	}
	return nil
}
