package service

import "context"

type Counter interface {
	Count(ctx context.Context) (int64, error)
}

type UserCounter interface {
	Counter
	CountPremium(ctx context.Context) (int64, error)
}

// SiteStats is the admin dashboard aggregate.
type SiteStats struct {
	Users        int64 `json:"users"`
	PremiumUsers int64 `json:"premiumUsers"`
	Biodatas     int64 `json:"biodatas"`
	Favorites    int64 `json:"favorites"`
}

type StatsService struct {
	users     UserCounter
	biodatas  Counter
	favorites Counter
}

func NewStatsService(users UserCounter, biodatas, favorites Counter) *StatsService {
	return &StatsService{users: users, biodatas: biodatas, favorites: favorites}
}

func (s *StatsService) Stats(ctx context.Context) (*SiteStats, error) {
	out := &SiteStats{}
	var err error

	if out.Users, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if out.PremiumUsers, err = s.users.CountPremium(ctx); err != nil {
		return nil, err
	}
	if out.Biodatas, err = s.biodatas.Count(ctx); err != nil {
		return nil, err
	}
	if out.Favorites, err = s.favorites.Count(ctx); err != nil {
		return nil, err
	}
	return out, nil
}
