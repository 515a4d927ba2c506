package services

import (
	"context"
	"fmt"

	"github.com/furuilin66/guandan/db"
	"github.com/furuilin66/guandan/models"
	"github.com/xuri/excelize/v2"
)

type ExportService interface {
	LeaderboardXLSX(ctx context.Context) ([]byte, error)
}

const exportSheetName = "排行榜"

var exportHeader = []string{"排名", "队伍名称", "参赛选手", "总分", "第1轮", "第2轮", "第3轮"}

type exportService struct {
	store *db.Store
}

func NewExportService(store *db.Store) ExportService {
	return &exportService{store: store}
}

// LeaderboardXLSX renders the current leaderboard as a spreadsheet: one row
// per team, ordered by rank, with each round shown as
// "own(score) VS opponent(score)".
func (s *exportService) LeaderboardXLSX(ctx context.Context) ([]byte, error) {
	rankings, err := s.store.Leaderboard()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheetName, cell, title); err != nil {
			return nil, err
		}
	}

	for row, entry := range rankings {
		values := []interface{}{entry.Rank, entry.TeamName, entry.Members, entry.TotalScore}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheetName, cell, v); err != nil {
				return nil, err
			}
		}

		for _, round := range entry.Rounds {
			if round.Round < models.MinRound || round.Round > models.MaxRound {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(4+round.Round, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheetName, cell, formatRoundCell(entry.TeamName, round)); err != nil {
				return nil, err
			}
		}
	}

	widths := []float64{8, 20, 30, 10, 30, 30, 30}
	for col, width := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(exportSheetName, name, name, width); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write spreadsheet: %w", err)
	}
	return buf.Bytes(), nil
}

func formatRoundCell(teamName string, round models.RoundResult) string {
	opponentScore := ""
	if round.OpponentScore != nil {
		opponentScore = fmt.Sprintf("(%d)", *round.OpponentScore)
	}
	return fmt.Sprintf("%s(%d) VS %s%s", teamName, round.Score, round.Opponent, opponentScore)
}
