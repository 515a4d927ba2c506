package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestLeaderboardXLSX(t *testing.T) {
	store := newTestStore(t)
	teamSvc := NewTeamService(store)
	matchSvc := NewMatchService(store, nil, discardLogger())
	ctx := context.Background()

	tigers, err := teamSvc.Login(ctx, "Tigers")
	require.NoError(t, err)
	bears, err := teamSvc.Login(ctx, "Bears")
	require.NoError(t, err)

	members := "Ann, Bob"
	_, err = teamSvc.Update(ctx, tigers.TeamID, UpdateTeamInput{Members: &members})
	require.NoError(t, err)

	_, err = matchSvc.Record(ctx, RecordMatchInput{TeamID: tigers.TeamID, Round: 1, OpponentName: "Bears", Level: 13})
	require.NoError(t, err)
	_, err = matchSvc.Record(ctx, RecordMatchInput{TeamID: bears.TeamID, Round: 1, OpponentName: "Tigers", Level: 10})
	require.NoError(t, err)

	data, err := NewExportService(store).LeaderboardXLSX(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("排行榜")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.Equal(t, []string{"排名", "队伍名称", "参赛选手", "总分", "第1轮", "第2轮", "第3轮"}, rows[0])

	require.Equal(t, "1", rows[1][0])
	require.Equal(t, "Tigers", rows[1][1])
	require.Equal(t, "Ann, Bob", rows[1][2])
	require.Equal(t, "13", rows[1][3])
	require.Equal(t, "Tigers(13) VS Bears(10)", rows[1][4])

	require.Equal(t, "2", rows[2][0])
	require.Equal(t, "Bears", rows[2][1])
	require.Equal(t, "Bears(10) VS Tigers(13)", rows[2][4])
}

func TestLeaderboardXLSXEmpty(t *testing.T) {
	data, err := NewExportService(newTestStore(t)).LeaderboardXLSX(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("排行榜")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
