package armor_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	externalmock "github.com/KirkDiggler/rpg-sheet/internal/clients/external/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/metrics"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/armor"
	armordetailmock "github.com/KirkDiggler/rpg-sheet/internal/repositories/armor_detail/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils/mocks"
)

func TestFetchRecordsResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := externalmock.NewMockClient(ctrl)
	mockRepo := armordetailmock.NewMockRepository(ctrl)
	mgr := metrics.NewManager()

	o, err := armor.NewOrchestrator(&armor.Config{
		ExternalClient: mockClient,
		Repository:     mockRepo,
		Metrics:        mgr,
	})
	require.NoError(t, err)

	ctx := context.Background()

	mocks.ExpectArmorCacheMiss(mockRepo, dnd5e.ArmorLeather)
	mocks.ExpectArmorFetch(mockClient, testutils.CreateLeatherArmorDetail())
	detail, err := o.FetchArmorDetail(ctx, dnd5e.ArmorLeather)
	require.NoError(t, err)
	assert.Equal(t, 11, detail.BaseAC)

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(nil, errNotCached(dnd5e.ArmorPlate))
	mocks.ExpectArmorFetchFailure(mockClient, dnd5e.ArmorPlate)
	_, err = o.FetchArmorDetail(ctx, dnd5e.ArmorPlate)
	require.Error(t, err)

	fetches, err := testutil.GatherAndCount(mgr.Registry(), "rpg_sheet_armor_fetches_total")
	require.NoError(t, err)
	assert.Equal(t, 2, fetches)
}

func errNotCached(armorID string) error {
	return errors.NotFoundf("armor detail %s not found", armorID)
}
