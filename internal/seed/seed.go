package seed

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/openday/backend/internal/app/models"
	"github.com/openday/backend/internal/app/repositories"
	"github.com/openday/backend/internal/db"
	"github.com/openday/backend/internal/pkg/auth"
	"github.com/openday/backend/internal/pkg/logger"
)

const (
	adminEmail    = "admin@wlv.ac.uk"
	adminPassword = "Admin123!"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

// CreateDefaultData seeds the admin account and the static reference data
// (subject areas, buildings, courses, FAQs) in a single transaction. Rows
// that already exist are left alone and any failure rolls everything back,
// so the seed is safe to run on every startup.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB) error {
	return database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		repos := repositories.NewRepositories(tx)

		if err := seedAdminUser(ctx, repos.UserRepository); err != nil {
			return err
		}
		if err := seedSubjectAreas(ctx, repos.SubjectAreaRepository); err != nil {
			return err
		}
		if err := seedBuildings(ctx, repos.BuildingRepository); err != nil {
			return err
		}
		if err := seedCourses(ctx, repos.CourseRepository, repos.SubjectAreaRepository); err != nil {
			return err
		}
		return seedFAQs(ctx, repos.FAQRepository)
	})
}

func seedAdminUser(ctx context.Context, userRepo *repositories.UserRepository) error {
	exists, err := userRepo.EmailExists(ctx, adminEmail)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:        adminEmail,
		PasswordHash: hash,
		FullName:     "Admin User",
		IsAdmin:      true,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info().Str("email", adminEmail).Msg("Seeded admin user")
	return nil
}

func seedSubjectAreas(ctx context.Context, areaRepo *repositories.SubjectAreaRepository) error {
	areas := []models.SubjectArea{
		{Name: "Business and Management", Description: strPtr("Business, entrepreneurship, management, and leadership courses")},
		{Name: "Computing and Computer Science", Description: strPtr("Programming, data science, cybersecurity, and digital technologies")},
		{Name: "Education and Teaching", Description: strPtr("Teacher training, educational leadership, and childhood studies")},
		{Name: "Engineering", Description: strPtr("Mechanical, electrical, civil, and aerospace engineering")},
		{Name: "Health and Social Care", Description: strPtr("Nursing, midwifery, paramedic science, and social work")},
		{Name: "Law", Description: strPtr("Legal studies, criminology, and policing")},
		{Name: "Science", Description: strPtr("Biology, chemistry, physics, and forensic science")},
		{Name: "Arts and Humanities", Description: strPtr("Art, design, media, English, and history")},
	}

	for i := range areas {
		area := areas[i]
		exists, err := areaRepo.ExistsByName(ctx, area.Name)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if err := areaRepo.Create(ctx, &area); err != nil {
			return err
		}
	}
	return nil
}

func seedBuildings(ctx context.Context, buildingRepo *repositories.BuildingRepository) error {
	buildings := []models.Building{
		{Name: "MC Building", Code: strPtr("MC"), Description: strPtr("Main campus building with lecture halls and student services"), Campus: strPtr("City Campus"), Latitude: floatPtr(52.5874), Longitude: floatPtr(-2.1273)},
		{Name: "Science Centre", Code: strPtr("SC"), Description: strPtr("Modern science and research facilities"), Campus: strPtr("City Campus"), Latitude: floatPtr(52.5872), Longitude: floatPtr(-2.1264)},
		{Name: "Performance Hub", Code: strPtr("PH"), Description: strPtr("Performing arts and music facilities"), Campus: strPtr("Walsall Campus"), Latitude: floatPtr(52.5801), Longitude: floatPtr(-1.9909)},
		{Name: "Student Centre", Code: strPtr("FS"), Description: strPtr("Student support and services hub"), Campus: strPtr("City Campus"), Latitude: floatPtr(52.5882), Longitude: floatPtr(-2.1298)},
	}

	for i := range buildings {
		building := buildings[i]
		exists, err := buildingRepo.ExistsByName(ctx, building.Name)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if err := buildingRepo.Create(ctx, &building); err != nil {
			return err
		}
	}
	return nil
}

func seedCourses(ctx context.Context, courseRepo *repositories.CourseRepository, areaRepo *repositories.SubjectAreaRepository) error {
	existing, err := courseRepo.GetAll(ctx, nil)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	areas, err := areaRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	areaIDs := make(map[string]int64, len(areas))
	for _, area := range areas {
		areaIDs[area.Name] = area.ID
	}

	areaID := func(name string) *int64 {
		if id, ok := areaIDs[name]; ok {
			return &id
		}
		return nil
	}

	courses := []models.Course{
		{Name: "Computer Science BSc (Hons)", Description: strPtr("Software development, algorithms, and systems design"), SubjectAreaID: areaID("Computing and Computer Science"), Faculty: strPtr("Faculty of Science and Engineering"), Duration: strPtr("3 years"), UCASCode: strPtr("G400"), Level: strPtr("Undergraduate")},
		{Name: "Cyber Security BSc (Hons)", Description: strPtr("Network security, ethical hacking, and digital forensics"), SubjectAreaID: areaID("Computing and Computer Science"), Faculty: strPtr("Faculty of Science and Engineering"), Duration: strPtr("3 years"), UCASCode: strPtr("I190"), Level: strPtr("Undergraduate")},
		{Name: "Business Management BA (Hons)", Description: strPtr("Strategy, operations, and organisational behaviour"), SubjectAreaID: areaID("Business and Management"), Faculty: strPtr("Business School"), Duration: strPtr("3 years"), UCASCode: strPtr("N200"), Level: strPtr("Undergraduate")},
		{Name: "Adult Nursing BNurs (Hons)", Description: strPtr("Clinical practice and patient-centred care"), SubjectAreaID: areaID("Health and Social Care"), Faculty: strPtr("Faculty of Health and Wellbeing"), Duration: strPtr("3 years"), UCASCode: strPtr("B740"), Level: strPtr("Undergraduate")},
		{Name: "Law LLB (Hons)", Description: strPtr("Contract, criminal, and constitutional law"), SubjectAreaID: areaID("Law"), Faculty: strPtr("Law School"), Duration: strPtr("3 years"), UCASCode: strPtr("M100"), Level: strPtr("Undergraduate")},
	}

	for i := range courses {
		course := courses[i]
		if err := courseRepo.Create(ctx, &course); err != nil {
			return err
		}
	}

	logger.Info().Int("count", len(courses)).Msg("Seeded courses")
	return nil
}

func seedFAQs(ctx context.Context, faqRepo *repositories.FAQRepository) error {
	existing, err := faqRepo.GetAll(ctx, nil)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	faqs := []models.FAQ{
		{Question: "Do I need to book a place at an open day?", Answer: "Yes, please register through the app so we can plan capacity and send you joining instructions.", Category: strPtr("Registration")},
		{Question: "Can I bring family or friends?", Answer: "Of course. Parents, guardians, and friends are welcome to join you on the day.", Category: strPtr("Visiting")},
		{Question: "Is parking available on campus?", Answer: "Visitor parking is available at City Campus on a first come first served basis. Walsall Campus has a dedicated visitor car park.", Category: strPtr("Visiting")},
		{Question: "What should I bring with me?", Answer: "Just yourself and any questions you have. A copy of your predicted grades can help course teams give tailored advice.", Category: strPtr("Visiting")},
		{Question: "Will I be able to see the accommodation?", Answer: "Accommodation tours run throughout each open day. Check the event schedule for times.", Category: strPtr("Accommodation")},
		{Question: "How do virtual open days work?", Answer: "Virtual open days run online with live talks and Q&A sessions. Joining links are emailed to registered attendees the day before.", Category: strPtr("Virtual")},
	}

	for i := range faqs {
		faq := faqs[i]
		if err := faqRepo.Create(ctx, &faq); err != nil {
			return err
		}
	}

	logger.Info().Int("count", len(faqs)).Msg("Seeded FAQs")
	return nil
}
