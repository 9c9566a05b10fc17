package main

import (
	"context"
	"flag"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stemsi/safetrain-backend/internal/config"
	"github.com/stemsi/safetrain-backend/internal/database"
	"github.com/stemsi/safetrain-backend/internal/logger"
	"github.com/stemsi/safetrain-backend/internal/model"
	"github.com/stemsi/safetrain-backend/internal/questionbank"
	"github.com/stemsi/safetrain-backend/internal/repository"
)

type demoUser struct {
	name, position, department, email string
	role                              model.UserRole
}

var demoUsers = []demoUser{
	{"Helen Carter", "Safety Officer", "HSE", "admin@safetrain.local", model.UserRoleAdmin},
	{"Marcus Reed", "Instructor", "HSE", "instructor@safetrain.local", model.UserRoleInstructor},
	{"Alice Novak", "Electrician", "Maintenance", "alice.novak@safetrain.local", model.UserRoleStudent},
	{"Bruno Silva", "Welder", "Workshop", "bruno.silva@safetrain.local", model.UserRoleStudent},
	{"Chen Wei", "Crane Operator", "Logistics", "chen.wei@safetrain.local", model.UserRoleStudent},
	{"Dana Kowalski", "Shift Supervisor", "Production", "dana.kowalski@safetrain.local", model.UserRoleStudent},
}

func main() {
	topic := flag.String("topic", string(questionbank.TopicFireSafety), "Question bank topic used for the demo instruction test")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	userRepo := repository.NewUserRepository(pool)
	programRepo := repository.NewProgramRepository(pool)
	instructionRepo := repository.NewInstructionRepository(pool)
	questionRepo := repository.NewTestQuestionRepository(pool)
	assignmentRepo := repository.NewAssignmentRepository(pool)
	txRunner := repository.NewTxRunner(pool)

	// ─── Users ─────────────────────────────────────────────────────────
	users := make([]model.User, len(demoUsers))
	for i, d := range demoUsers {
		u := model.User{
			FullName:   d.name,
			Position:   &d.position,
			Department: &d.department,
			Email:      &d.email,
			Role:       d.role,
		}
		if err := userRepo.Upsert(ctx, &u); err != nil {
			log.Fatal().Err(err).Str("email", d.email).Msg("Failed to upsert user")
		}
		users[i] = u
	}
	admin := users[0]
	log.Info().Int("count", len(users)).Msg("Users seeded")

	// ─── Program ───────────────────────────────────────────────────────
	programID, err := programRepo.Create(ctx,
		"Fire safety for production staff",
		"Fire prevention, extinguisher use and evacuation procedures.",
		16, 80,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create program")
	}

	// ─── Instruction with stored test ──────────────────────────────────
	industry, profession := "Manufacturing", "Production worker"
	in := &model.Instruction{
		Title:      "Fire safety instruction for production areas",
		Category:   "iot",
		Industry:   &industry,
		Profession: &profession,
		Content:    "1. General provisions\n2. Before work\n3. During work\n4. Emergencies\n5. After work",
		CreatedBy:  admin.ID,
	}
	if err := instructionRepo.Create(ctx, in); err != nil {
		log.Fatal().Err(err).Msg("Failed to create instruction")
	}

	questions := storedQuestions(questionbank.Lookup(questionbank.Topic(*topic)))
	err = txRunner.InTx(ctx, func(tx pgx.Tx) error {
		return questionRepo.ReplaceAll(ctx, tx, in.ID, questions)
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to store test questions")
	}

	// ─── Assignments ───────────────────────────────────────────────────
	deadline := time.Now().AddDate(0, 1, 0)
	for _, u := range users {
		if u.Role != model.UserRoleStudent {
			continue
		}
		a := &model.Assignment{UserID: u.ID, ProgramID: programID, AssignedBy: admin.ID, Deadline: &deadline}
		if err := assignmentRepo.Create(ctx, a); err != nil {
			log.Fatal().Err(err).Int64("user_id", u.ID).Msg("Failed to create assignment")
		}
	}

	log.Info().
		Int64("program_id", programID).
		Int64("instruction_id", in.ID).
		Int("questions", len(questions)).
		Msg("Demo data seeded")
}

// storedQuestions converts single-choice templates with exactly four
// answers into stored four-option questions.
func storedQuestions(templates []questionbank.Template) []model.TestQuestion {
	var out []model.TestQuestion
	for _, t := range templates {
		if t.Type != questionbank.QuestionTypeSingle || len(t.Answers) != 4 {
			continue
		}
		q := model.TestQuestion{
			Question: t.Text,
			OptionA:  t.Answers[0].Text,
			OptionB:  t.Answers[1].Text,
			OptionC:  t.Answers[2].Text,
			OptionD:  t.Answers[3].Text,
		}
		for _, a := range t.Answers {
			if a.Correct {
				q.CorrectAnswer = a.Text
			}
		}
		out = append(out, q)
	}
	return out
}
