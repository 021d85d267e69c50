package achievement

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/orbitalswap/points-service/campaign"
	"github.com/orbitalswap/points-service/multicall"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	account     = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	pointCenter = common.HexToAddress("0x00000000000000000000000000000000000000cc")
	ifoA        = common.HexToAddress("0x000000000000000000000000000000000000000a")
	ifoB        = common.HexToAddress("0x000000000000000000000000000000000000000b")
	ifoC        = common.HexToAddress("0x000000000000000000000000000000000000000c")
)

type recordedBatch struct {
	calls []multicall.Call
	opts  multicall.Options
}

// fakeReader answers point center calls from in-memory tables. A missing
// claim entry or ifo entry behaves like a reverted call.
type fakeReader struct {
	claim   map[common.Address]bool
	entries map[common.Address][]interface{}
	err     error
	errOn   string
	batches []recordedBatch
}

func (f *fakeReader) Multicall(ctx context.Context, contractABI abi.ABI, calls []multicall.Call, opts multicall.Options) ([][]interface{}, error) {
	f.batches = append(f.batches, recordedBatch{calls: calls, opts: opts})
	if f.err != nil && (f.errOn == "" || f.errOn == calls[0].Name) {
		return nil, f.err
	}
	out := make([][]interface{}, len(calls))
	for i, c := range calls {
		switch c.Name {
		case methodCheckClaimStatus:
			if v, ok := f.claim[c.Params[1].(common.Address)]; ok {
				out[i] = []interface{}{v}
			}
		case methodIfos:
			out[i] = f.entries[c.Params[0].(common.Address)]
		}
	}
	return out, nil
}

func ifoEntry(campaignID string, points int64) []interface{} {
	id, _ := new(big.Int).SetString(campaignID, 10)
	return []interface{}{big.NewInt(0), id, big.NewInt(points)}
}

func scenarioDescriptors() []campaign.IfoDescriptor {
	return []campaign.IfoDescriptor{
		{ID: "a", Address: ifoA, CampaignID: "1"},
		{ID: "b", Address: ifoB},
		{ID: "c", Address: ifoC, CampaignID: "2"},
	}
}

func newTestAggregator(t *testing.T, reader BatchReader, ifos []campaign.IfoDescriptor, campaigns ...campaign.Campaign) (*Aggregator, *bytes.Buffer) {
	reg, err := campaign.NewRegistry(campaigns...)
	require.NoError(t, err)
	var logs bytes.Buffer
	agg, err := NewAggregator(reg, ifos, reader, pointCenter, zerolog.New(&logs))
	require.NoError(t, err)
	return agg, &logs
}

func TestClaimableAchievementsScenario(t *testing.T) {
	reader := &fakeReader{
		claim: map[common.Address]bool{ifoA: true, ifoC: true},
		entries: map[common.Address][]interface{}{
			ifoA: ifoEntry("1", 500),
			ifoC: ifoEntry("2", 10),
		},
	}
	agg, _ := newTestAggregator(t, reader, scenarioDescriptors(),
		campaign.Campaign{ID: "1", Type: campaign.CampaignTypeIfo, Title: campaign.Text("Token X"), Badge: "ifo-x"},
	)

	got, err := agg.ClaimableAchievements(context.Background(), account)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, Achievement{
		Address:     ifoA.Hex(),
		ID:          "1",
		Type:        campaign.CampaignTypeIfo,
		Title:       campaign.Translatable("IFO Shopper: %title%", map[string]string{"title": "Token X"}),
		Description: campaign.Translatable("Committed more than $5 worth of LP in the %title% IFO", map[string]string{"title": "Token X"}),
		Badge:       "ifo-x",
		Points:      500,
	}, got[0])

	// the descriptor without campaign id never reaches the chain
	require.Len(t, reader.batches, 2)
	claimBatch := reader.batches[0]
	require.Len(t, claimBatch.calls, 2)
	assert.False(t, claimBatch.opts.RequireSuccess)
	for i, want := range []common.Address{ifoA, ifoC} {
		c := claimBatch.calls[i]
		assert.Equal(t, pointCenter, c.Address)
		assert.Equal(t, methodCheckClaimStatus, c.Name)
		assert.Equal(t, []interface{}{account, want}, c.Params)
	}
	assert.False(t, reader.batches[1].opts.RequireSuccess)
}

func TestClaimableAchievementsCallCount(t *testing.T) {
	ifos := []campaign.IfoDescriptor{
		{Address: common.BigToAddress(big.NewInt(1)), CampaignID: "1"},
		{Address: common.BigToAddress(big.NewInt(2))},
		{Address: common.BigToAddress(big.NewInt(3))},
		{Address: common.BigToAddress(big.NewInt(4)), CampaignID: "4"},
		{Address: common.BigToAddress(big.NewInt(5)), CampaignID: "5"},
	}
	reader := &fakeReader{}
	agg, _ := newTestAggregator(t, reader, ifos)

	got, err := agg.ClaimableAchievements(context.Background(), account)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)

	// nothing claimable, so only the claim status batch is issued
	require.Len(t, reader.batches, 1)
	assert.Len(t, reader.batches[0].calls, 3)
}

func TestClaimableAchievementsNoCampaignIfos(t *testing.T) {
	reader := &fakeReader{}
	agg, _ := newTestAggregator(t, reader, []campaign.IfoDescriptor{{Address: ifoB}})

	got, err := agg.ClaimableAchievements(context.Background(), account)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, reader.batches)
}

func TestClaimableAchievementsIneligible(t *testing.T) {
	reader := &fakeReader{
		// ifoC reverted: no claim entry at all
		claim:   map[common.Address]bool{ifoA: false},
		entries: map[common.Address][]interface{}{ifoA: ifoEntry("1", 500), ifoC: ifoEntry("2", 10)},
	}
	agg, _ := newTestAggregator(t, reader, scenarioDescriptors(),
		campaign.Campaign{ID: "1", Type: campaign.CampaignTypeIfo, Title: campaign.Text("A")},
		campaign.Campaign{ID: "2", Type: campaign.CampaignTypeIfo, Title: campaign.Text("C")},
	)

	got, err := agg.ClaimableAchievements(context.Background(), account)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Len(t, reader.batches, 1)
}

func TestClaimableAchievementsPartialFailure(t *testing.T) {
	reader := &fakeReader{
		claim: map[common.Address]bool{ifoA: true, ifoC: true},
		// ifos(ifoA) reverts
		entries: map[common.Address][]interface{}{ifoC: ifoEntry("2", 10)},
	}
	agg, _ := newTestAggregator(t, reader, scenarioDescriptors(),
		campaign.Campaign{ID: "1", Type: campaign.CampaignTypeIfo, Title: campaign.Text("A")},
		campaign.Campaign{ID: "2", Type: campaign.CampaignTypeTeamBattle, Title: campaign.Text("C"), Description: campaign.Text("desc"), Badge: "c"},
	)

	got, err := agg.ClaimableAchievements(context.Background(), account)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
	assert.Equal(t, int64(10), got[0].Points)
	assert.Equal(t, campaign.Text("C"), got[0].Title)
	assert.Equal(t, campaign.Text("desc"), got[0].Description)
}

func TestClaimableAchievementsTotalFailure(t *testing.T) {
	for _, method := range []string{methodCheckClaimStatus, methodIfos} {
		t.Run(method, func(t *testing.T) {
			reader := &fakeReader{
				claim:   map[common.Address]bool{ifoA: true},
				entries: map[common.Address][]interface{}{ifoA: ifoEntry("1", 500)},
				err:     errors.New("dial tcp: connection refused"),
				errOn:   method,
			}
			agg, _ := newTestAggregator(t, reader, scenarioDescriptors(),
				campaign.Campaign{ID: "1", Type: campaign.CampaignTypeIfo, Title: campaign.Text("A")},
			)

			got, err := agg.ClaimableAchievements(context.Background(), account)
			assert.ErrorIs(t, err, ErrAchievementsUnavailable)
			assert.ErrorIs(t, err, reader.err)
			assert.Nil(t, got)
		})
	}
}

func TestClaimableAchievementsIdempotent(t *testing.T) {
	reader := &fakeReader{
		claim:   map[common.Address]bool{ifoA: true, ifoC: true},
		entries: map[common.Address][]interface{}{ifoA: ifoEntry("1", 500), ifoC: ifoEntry("2", 10)},
	}
	agg, _ := newTestAggregator(t, reader, scenarioDescriptors(),
		campaign.Campaign{ID: "2", Type: campaign.CampaignTypeIfo, Title: campaign.Text("C")},
		campaign.Campaign{ID: "1", Type: campaign.CampaignTypeIfo, Title: campaign.Text("A")},
	)

	first, err := agg.ClaimableAchievements(context.Background(), account)
	require.NoError(t, err)
	second, err := agg.ClaimableAchievements(context.Background(), account)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	// order follows the ifo list, not the registry
	require.Len(t, first, 2)
	assert.Equal(t, "1", first[0].ID)
	assert.Equal(t, "2", first[1].ID)
}

func TestAggregate(t *testing.T) {
	agg, logs := newTestAggregator(t, &fakeReader{}, nil,
		campaign.Campaign{ID: "1", Type: campaign.CampaignTypeIfo, Title: campaign.Text("A"), Badge: "a"},
		campaign.Campaign{ID: "3", Type: campaign.CampaignTypeIfo, Title: campaign.Text("Orphan")},
	)
	huge, _ := new(big.Int).SetString("100000000000000000000000", 10)
	ifos := []campaign.IfoDescriptor{{ID: "a", Address: ifoA, CampaignID: "1"}}

	testCases := []struct {
		name    string
		results []*EligibilityResult
		want    []string
		logged  string
	}{
		{
			name:    "nil and ineligible skipped",
			results: []*EligibilityResult{nil, {CampaignID: "1", NumberPoints: big.NewInt(5), Eligible: false}},
		},
		{
			name:    "registry miss dropped silently",
			results: []*EligibilityResult{{CampaignID: "2", NumberPoints: big.NewInt(5), Eligible: true}},
		},
		{
			name:    "descriptor mismatch logged",
			results: []*EligibilityResult{{CampaignID: "3", NumberPoints: big.NewInt(5), Eligible: true}},
			logged:  "no matching ifo descriptor",
		},
		{
			name:    "points overflow logged",
			results: []*EligibilityResult{{CampaignID: "1", NumberPoints: huge, Eligible: true}},
			logged:  "points out of range",
		},
		{
			name:    "eligible",
			results: []*EligibilityResult{{CampaignID: "1", NumberPoints: big.NewInt(5), Eligible: true}},
			want:    []string{"1"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logs.Reset()
			got := agg.Aggregate(tc.results, ifos)
			ids := []string{}
			for _, a := range got {
				ids = append(ids, a.ID)
			}
			if tc.want == nil {
				tc.want = []string{}
			}
			assert.Equal(t, tc.want, ids)
			if tc.logged == "" {
				assert.Empty(t, logs.String())
			} else {
				assert.Contains(t, logs.String(), tc.logged)
			}
		})
	}
}

func TestNarrowPoints(t *testing.T) {
	testCases := []struct {
		name  string
		input *big.Int
		want  int64
		err   bool
	}{
		{name: "nil", input: nil, want: 0},
		{name: "small", input: big.NewInt(500), want: 500},
		{name: "max", input: new(big.Int).SetUint64(1<<63 - 1), want: 1<<63 - 1},
		{name: "overflow", input: new(big.Int).SetUint64(1 << 63), err: true},
		{name: "negative", input: big.NewInt(-1), err: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NarrowPoints(tc.input)
			if tc.err {
				assert.ErrorIs(t, err, ErrPointsOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
