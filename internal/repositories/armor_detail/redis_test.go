package armordetail_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	armordetail "github.com/KirkDiggler/rpg-sheet/internal/repositories/armor_detail"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
)

const testChainMailKey = "armor_detail:chain-mail"

type RedisArmorDetailTestSuite struct {
	suite.Suite
	ctx     context.Context
	clock   *clock.Fixed
	cleanup func()
	mr      *miniredis.Miniredis
	repo    armordetail.Repository
}

func TestRedisArmorDetailSuite(t *testing.T) {
	suite.Run(t, new(RedisArmorDetailTestSuite))
}

func (s *RedisArmorDetailTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewFixed(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))

	client, cleanup := testutils.CreateTestRedisClientWithSetup(s.T(), func(mr *miniredis.Miniredis) {
		s.mr = mr
	})
	s.cleanup = cleanup

	repo, err := armordetail.NewRedis(&armordetail.RedisConfig{
		Client: client,
		Clock:  s.clock,
		TTL:    time.Hour,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisArmorDetailTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisArmorDetailTestSuite) TestNewRedis() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	defer cleanup()

	testCases := []struct {
		name    string
		config  *armordetail.RedisConfig
		wantErr bool
		errMsg  string
	}{
		{
			name:   "success with valid config",
			config: &armordetail.RedisConfig{Client: client},
		},
		{
			name:    "error with nil config",
			config:  nil,
			wantErr: true,
			errMsg:  "config cannot be nil",
		},
		{
			name:    "error with nil client",
			config:  &armordetail.RedisConfig{},
			wantErr: true,
			errMsg:  "client cannot be nil",
		},
		{
			name:    "error with negative ttl",
			config:  &armordetail.RedisConfig{Client: client, TTL: -time.Second},
			wantErr: true,
			errMsg:  "ttl cannot be negative",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := armordetail.NewRedis(tc.config)
			if tc.wantErr {
				s.Require().Error(err)
				s.Contains(err.Error(), tc.errMsg)
				s.Nil(repo)
				return
			}
			s.NoError(err)
			s.NotNil(repo)
		})
	}
}

func (s *RedisArmorDetailTestSuite) TestPutThenGet() {
	detail := testutils.CreateChainMailDetail()

	putOut, err := s.repo.Put(s.ctx, armordetail.PutInput{Detail: detail})
	s.Require().NoError(err)
	s.Equal(s.clock.At, putOut.FetchedAt)

	s.True(s.mr.Exists(testChainMailKey))
	s.Equal(time.Hour, s.mr.TTL(testChainMailKey))

	// lookups by either id form land on the same key
	for _, id := range []string{dnd5e.ArmorChainMail, "chain-mail"} {
		out, err := s.repo.Get(s.ctx, armordetail.GetInput{ArmorID: id})
		s.Require().NoError(err)
		s.Equal(detail.Name, out.Detail.Name)
		s.Equal(16, out.Detail.BaseAC)
		s.Equal(dnd5e.ArmorCategoryHeavy, out.Detail.Category)
		s.Require().NotNil(out.Detail.DexCap)
		s.Equal(0, *out.Detail.DexCap)
		s.Equal(s.clock.At, out.FetchedAt)
	}
}

func (s *RedisArmorDetailTestSuite) TestGetExpired() {
	_, err := s.repo.Put(s.ctx, armordetail.PutInput{Detail: testutils.CreateLeatherArmorDetail()})
	s.Require().NoError(err)

	s.mr.FastForward(2 * time.Hour)

	_, err = s.repo.Get(s.ctx, armordetail.GetInput{ArmorID: dnd5e.ArmorLeather})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisArmorDetailTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, armordetail.GetInput{ArmorID: dnd5e.ArmorPlate})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisArmorDetailTestSuite) TestGetEmptyID() {
	_, err := s.repo.Get(s.ctx, armordetail.GetInput{ArmorID: ""})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisArmorDetailTestSuite) TestPutValidation() {
	testCases := []struct {
		name   string
		input  armordetail.PutInput
		errMsg string
	}{
		{
			name:   "nil detail",
			input:  armordetail.PutInput{},
			errMsg: "detail",
		},
		{
			name:   "missing armor id",
			input:  armordetail.PutInput{Detail: &dnd5e.ArmorDetail{Category: dnd5e.ArmorCategoryLight}},
			errMsg: "detail.armor_id",
		},
		{
			name: "unknown category",
			input: armordetail.PutInput{Detail: &dnd5e.ArmorDetail{
				ArmorID:  dnd5e.ArmorLeather,
				Category: "cloth",
			}},
			errMsg: "detail.category",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Put(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.errMsg)
		})
	}
}

func (s *RedisArmorDetailTestSuite) TestGetKey() {
	s.Equal(testChainMailKey, armordetail.GetKey(dnd5e.ArmorChainMail))
	s.Equal("armor_detail:studded-leather", armordetail.GetKey("Studded Leather"))
}

type RedisArmorDetailFailureTestSuite struct {
	suite.Suite
	ctx       context.Context
	redisMock redismock.ClientMock
	repo      armordetail.Repository
}

func TestRedisArmorDetailFailureSuite(t *testing.T) {
	suite.Run(t, new(RedisArmorDetailFailureTestSuite))
}

func (s *RedisArmorDetailFailureTestSuite) SetupTest() {
	s.ctx = context.Background()
	client, mock := redismock.NewClientMock()
	s.redisMock = mock

	repo, err := armordetail.NewRedis(&armordetail.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisArmorDetailFailureTestSuite) TearDownTest() {
	s.NoError(s.redisMock.ExpectationsWereMet())
}

func (s *RedisArmorDetailFailureTestSuite) TestGetRedisError() {
	s.redisMock.ExpectGet(testChainMailKey).SetErr(fmt.Errorf("connection refused"))

	_, err := s.repo.Get(s.ctx, armordetail.GetInput{ArmorID: dnd5e.ArmorChainMail})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
	s.Contains(err.Error(), "failed to get armor detail")
}

func (s *RedisArmorDetailFailureTestSuite) TestGetCorruptPayload() {
	s.redisMock.ExpectGet(testChainMailKey).SetVal("{not json")

	_, err := s.repo.Get(s.ctx, armordetail.GetInput{ArmorID: dnd5e.ArmorChainMail})
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to unmarshal armor detail data")
}

func (s *RedisArmorDetailFailureTestSuite) TestPutRedisError() {
	s.redisMock.Regexp().ExpectSet(testChainMailKey, `.*`, armordetail.DefaultTTL).SetErr(fmt.Errorf("READONLY"))

	_, err := s.repo.Put(s.ctx, armordetail.PutInput{Detail: testutils.CreateChainMailDetail()})
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to cache armor detail")
}
