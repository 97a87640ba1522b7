package services

import (
	"context"
	"math"
	"sort"
	"time"

	"fitcircle/internal/models"
	"fitcircle/internal/repository"
	"fitcircle/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultMemberName = "Member"

// LeaderboardService builds the family view: members ranked by calories
// burned on a date, plus the live weekly challenge total.
type LeaderboardService struct {
	familyRepo    repository.FamilyRepository
	profileRepo   repository.ProfileRepository
	progressRepo  repository.DailyProgressRepository
	challengeRepo repository.WeeklyChallengeRepository
	logger        *zap.Logger
}

func NewLeaderboardService(
	familyRepo repository.FamilyRepository,
	profileRepo repository.ProfileRepository,
	progressRepo repository.DailyProgressRepository,
	challengeRepo repository.WeeklyChallengeRepository,
	logger *zap.Logger,
) *LeaderboardService {
	return &LeaderboardService{
		familyRepo:    familyRepo,
		profileRepo:   profileRepo,
		progressRepo:  progressRepo,
		challengeRepo: challengeRepo,
		logger:        logger,
	}
}

type MemberSummary struct {
	UserID           uuid.UUID `json:"user_id"`
	Name             string    `json:"name"`
	CaloriesBurned   int       `json:"calories_burned"`
	CaloriesConsumed int       `json:"calories_consumed"`
	Steps            int       `json:"steps"`
	WaterMl          int       `json:"water_ml"`
	LastActive       string    `json:"last_active"`
	IsLeader         bool      `json:"is_leader"`
	IsCurrentUser    bool      `json:"is_current_user"`
	AvatarColor      string    `json:"avatar_color"`
}

type ChallengeProgress struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Current      int       `json:"current"`
	Target       int       `json:"target"`
	Percentage   float64   `json:"percentage"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	DaysLeft     int       `json:"days_left"`
	Participants int       `json:"participants"`
}

type FamilySummary struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	InviteCode string    `json:"invite_code"`
}

type FamilyView struct {
	Family    *FamilySummary     `json:"family"`
	Date      string             `json:"date"`
	Members   []MemberSummary    `json:"members"`
	Leader    *MemberSummary     `json:"leader"`
	Challenge *ChallengeProgress `json:"challenge"`
}

// ComputeFamilyView ranks the user's family for date. A user without a family
// gets a single-member view of their own progress and no challenge.
func (s *LeaderboardService) ComputeFamilyView(ctx context.Context, userID uuid.UUID, date, now time.Time) (*FamilyView, error) {
	view := &FamilyView{Date: utils.FormatDate(date)}

	memberIDs := []uuid.UUID{userID}
	var family *models.FamilyCircle

	membership, err := s.familyRepo.FindMembershipByUserID(ctx, userID)
	switch {
	case err == nil:
		family, err = s.familyRepo.FindByID(ctx, membership.FamilyID)
		if err != nil {
			return nil, storeFailure("failed to load family", err)
		}
		members, err := s.familyRepo.ListMembers(ctx, family.ID)
		if err != nil {
			return nil, storeFailure("failed to load family members", err)
		}
		memberIDs = make([]uuid.UUID, 0, len(members))
		for _, m := range members {
			memberIDs = append(memberIDs, m.UserID)
		}
		view.Family = &FamilySummary{
			ID:         family.ID,
			Name:       family.Name,
			InviteCode: family.DisplayInviteCode(),
		}
	case repository.IsNotFound(err):
	default:
		return nil, storeFailure("failed to load family", err)
	}

	var (
		profiles  []models.Profile
		progress  []models.DailyProgress
		challenge *models.WeeklyChallenge
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profiles, err = s.profileRepo.FindByUserIDs(gctx, memberIDs)
		return err
	})
	g.Go(func() error {
		var err error
		progress, err = s.progressRepo.FindByUsersAndDate(gctx, memberIDs, date)
		return err
	})
	if family != nil {
		familyID := family.ID
		g.Go(func() error {
			c, err := s.challengeRepo.FindActive(gctx, familyID, date)
			if err != nil {
				if repository.IsNotFound(err) {
					return nil
				}
				return err
			}
			challenge = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("family view fan-out failed", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, storeFailure("failed to load family progress", err)
	}

	view.Members = rankMembers(userID, memberIDs, profiles, progress, now)
	if len(view.Members) > 0 {
		leader := view.Members[0]
		view.Leader = &leader
	}
	if challenge != nil {
		view.Challenge = challengeProgress(challenge, view.Members, date)
	}
	return view, nil
}

func rankMembers(currentUser uuid.UUID, memberIDs []uuid.UUID, profiles []models.Profile, progress []models.DailyProgress, now time.Time) []MemberSummary {
	profileByUser := make(map[uuid.UUID]*models.Profile, len(profiles))
	for i := range profiles {
		profileByUser[profiles[i].UserID] = &profiles[i]
	}
	progressByUser := make(map[uuid.UUID]*models.DailyProgress, len(progress))
	for i := range progress {
		progressByUser[progress[i].UserID] = &progress[i]
	}

	summaries := make([]MemberSummary, 0, len(memberIDs))
	for _, id := range memberIDs {
		summary := MemberSummary{
			UserID:        id,
			Name:          defaultMemberName,
			LastActive:    utils.NoActivityLabel,
			IsCurrentUser: id == currentUser,
		}
		if p, ok := profileByUser[id]; ok && p.DisplayName != "" {
			summary.Name = p.DisplayName
		}
		if p, ok := progressByUser[id]; ok {
			summary.CaloriesBurned = p.CaloriesBurned
			summary.CaloriesConsumed = p.CaloriesConsumed
			summary.Steps = p.Steps
			summary.WaterMl = p.WaterMl
			summary.LastActive = utils.TimeAgo(p.UpdatedAt, now)
		}
		summaries = append(summaries, summary)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].CaloriesBurned > summaries[j].CaloriesBurned
	})
	for i := range summaries {
		summaries[i].IsLeader = i == 0
		summaries[i].AvatarColor = utils.AvatarColor(i)
	}
	return summaries
}

// challengeProgress ignores the stored Current and sums member steps for date.
func challengeProgress(c *models.WeeklyChallenge, members []MemberSummary, date time.Time) *ChallengeProgress {
	total := 0
	for _, m := range members {
		total += m.Steps
	}

	daysLeft := int(c.EndDate.Sub(date).Hours() / 24)
	if daysLeft < 0 {
		daysLeft = 0
	}

	percentage := 0.0
	if c.Target > 0 {
		percentage = math.Min(100, float64(total)/float64(c.Target)*100)
	}

	return &ChallengeProgress{
		ID:           c.ID,
		Title:        c.Title,
		Current:      total,
		Target:       c.Target,
		Percentage:   math.Round(percentage*10) / 10,
		StartDate:    utils.FormatDate(c.StartDate),
		EndDate:      utils.FormatDate(c.EndDate),
		DaysLeft:     daysLeft,
		Participants: len(members),
	}
}
