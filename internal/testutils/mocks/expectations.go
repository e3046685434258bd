// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	externalmock "github.com/KirkDiggler/rpg-sheet/internal/clients/external/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	armordetail "github.com/KirkDiggler/rpg-sheet/internal/repositories/armor_detail"
	armordetailmock "github.com/KirkDiggler/rpg-sheet/internal/repositories/armor_detail/mock"
)

// ExpectArmorFetch sets up the external client to return detail for its armor ID
func ExpectArmorFetch(mockClient *externalmock.MockClient, detail *dnd5e.ArmorDetail) *gomock.Call {
	return mockClient.EXPECT().
		GetArmorDetail(gomock.Any(), detail.ArmorID).
		Return(detail, nil)
}

// ExpectArmorFetchFailure sets up the external client to fail for armorID
func ExpectArmorFetchFailure(mockClient *externalmock.MockClient, armorID string) *gomock.Call {
	return mockClient.EXPECT().
		GetArmorDetail(gomock.Any(), armorID).
		Return(nil, errors.Unavailable("armor lookup unavailable"))
}

// ExpectArmorCacheMiss sets up a cache miss followed by a successful write-back
func ExpectArmorCacheMiss(mockRepo *armordetailmock.MockRepository, armorID string) {
	mockRepo.EXPECT().
		Get(gomock.Any(), armordetail.GetInput{ArmorID: armorID}).
		Return(nil, errors.NotFoundf("armor detail %s not found", armorID))
	mockRepo.EXPECT().
		Put(gomock.Any(), gomock.Any()).
		Return(&armordetail.PutOutput{}, nil)
}
