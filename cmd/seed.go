package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fitcircle/database"
	"fitcircle/internal/models"
	"fitcircle/internal/repository"
	"fitcircle/internal/services"
	"fitcircle/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	seedMembers int
	seedDays    int
	seedFamily  string
	tokenTTL    time.Duration
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a demo family with a week of activity",
	Long: `Creates a family circle with demo members, fills their daily progress for
the last days, starts a steps challenge and prints a bearer token per member.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().IntVar(&seedMembers, "members", 3, "number of demo members")
	seedCmd.Flags().IntVar(&seedDays, "days", 7, "days of progress history per member")
	seedCmd.Flags().StringVar(&seedFamily, "family", "The Demo Family", "family circle name")
	seedCmd.Flags().DurationVar(&tokenTTL, "token-ttl", 24*time.Hour, "lifetime of the printed tokens")
}

var demoNames = []string{"Alex", "Sam", "Jordan", "Riley", "Casey", "Morgan"}

func runSeed(cmd *cobra.Command, args []string) error {
	if seedMembers < 1 || seedMembers > len(demoNames) {
		return fmt.Errorf("--members must be between 1 and %d", len(demoNames))
	}
	if seedDays < 1 {
		return errors.New("--days must be positive")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	db, err := database.Connect(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	if err := database.Migrate(db, logger); err != nil {
		return err
	}

	profileRepo := repository.NewProfileRepository(db)
	familyRepo := repository.NewFamilyRepository(db)
	profiles := services.NewProfileService(profileRepo, repository.NewDietaryPreferencesRepository(db), logger)
	progress := services.NewProgressService(repository.NewDailyProgressRepository(db), repository.NewWeightLogRepository(db), logger)
	families := services.NewFamilyService(familyRepo, logger)
	challenges := services.NewChallengeService(familyRepo, repository.NewWeeklyChallengeRepository(db), logger)

	now := time.Now()
	today := utils.DateOf(now.In(loc))

	var family *models.FamilyCircle
	for i := 0; i < seedMembers; i++ {
		name := demoNames[i]
		identity := services.Identity{
			UserID: uuid.New(),
			Email:  fmt.Sprintf("%s@fitcircle.dev", strings.ToLower(name)),
			Name:   name,
		}
		if _, err := profiles.GetOrCreate(ctx, identity); err != nil {
			return err
		}

		if i == 0 {
			family, err = families.CreateFamily(ctx, identity.UserID, seedFamily)
		} else {
			_, err = families.JoinFamily(ctx, identity.UserID, family.InviteCode)
		}
		if err != nil {
			return err
		}

		for d := 0; d < seedDays; d++ {
			date := today.AddDate(0, 0, -d)
			for field, amount := range demoActivity(i, d) {
				if _, err := progress.ApplyDelta(ctx, identity.UserID, date, field, amount); err != nil {
					return err
				}
			}
		}
		if _, err := progress.LogWeight(ctx, identity.UserID, 60+float64(i)*7.5, nil, now); err != nil {
			return err
		}

		token, err := issueToken(identity, now)
		if err != nil {
			return err
		}
		fmt.Printf("%-8s %s\n  token: %s\n", name, identity.UserID, token)

		if i == 0 {
			target := 10000 * seedMembers * 7
			if _, err := challenges.CreateChallenge(ctx, identity.UserID, today, services.NewChallenge{
				Title:  "Weekly Steps Challenge",
				Target: target,
			}); err != nil {
				return err
			}
		}
	}

	fmt.Printf("\nfamily %q invite code: %s\n", family.Name, family.InviteCode)
	logger.Info("seed completed",
		zap.String("family_id", family.ID.String()),
		zap.Int("members", seedMembers),
		zap.Int("days", seedDays))
	return nil
}

// demoActivity varies the numbers per member and day so the leaderboard has a clear order.
func demoActivity(member, day int) map[models.ProgressField]int {
	base := (seedMembers - member) * 100
	return map[models.ProgressField]int{
		models.FieldCaloriesBurned:   200 + base + day*15,
		models.FieldCaloriesConsumed: 1600 + base + day*20,
		models.FieldSteps:            5000 + base*10 + day*250,
		models.FieldWaterMl:          1000 + member*250,
	}
}

func issueToken(id services.Identity, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   id.UserID.String(),
		"email": id.Email,
		"name":  id.Name,
		"iat":   now.Unix(),
		"exp":   now.Add(tokenTTL).Unix(),
	})
	signed, err := token.SignedString([]byte(cfg.Auth.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
