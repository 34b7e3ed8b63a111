package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/kagailawrence/modarflor/internal/app"
	"github.com/kagailawrence/modarflor/internal/domain/catalog"
	"github.com/kagailawrence/modarflor/internal/domain/faqs"
	"github.com/kagailawrence/modarflor/internal/domain/pricing"
	"github.com/kagailawrence/modarflor/internal/infrastructure/cache"
	"github.com/kagailawrence/modarflor/internal/infrastructure/persistence"
	"github.com/kagailawrence/modarflor/internal/pkg/logger"

	"github.com/spf13/cobra"
)

var defaultFlooringTypes = []pricing.FlooringType{
	{Name: "Hardwood", Description: "Solid and engineered hardwood planks", MaterialPricePerSqft: 6.50, LaborPricePerSqft: 4.00, OrderIndex: 0},
	{Name: "Laminate", Description: "Click-lock laminate over underlayment", MaterialPricePerSqft: 2.50, LaborPricePerSqft: 2.00, OrderIndex: 1},
	{Name: "Luxury Vinyl Plank", Description: "Waterproof LVP for kitchens and baths", MaterialPricePerSqft: 3.50, LaborPricePerSqft: 2.25, OrderIndex: 2},
	{Name: "Tile", Description: "Porcelain and ceramic tile", MaterialPricePerSqft: 4.00, LaborPricePerSqft: 6.00, OrderIndex: 3},
	{Name: "Carpet", Description: "Broadloom carpet with pad", MaterialPricePerSqft: 3.00, LaborPricePerSqft: 1.50, OrderIndex: 4},
}

var defaultFAQs = []faqs.FAQ{
	{Question: "How long does a typical installation take?", Answer: "Most rooms are finished in **one to three days**, depending on the material and subfloor preparation.", OrderIndex: 0},
	{Question: "Do you remove the old flooring?", Answer: "Yes. Removal and disposal of existing flooring can be added to any quote.", OrderIndex: 1},
	{Question: "Is the estimate on the website binding?", Answer: "No. The online estimate is a guide; the final price is confirmed after an on-site measurement.", OrderIndex: 2},
	{Question: "Do you offer a warranty?", Answer: "Every installation carries a workmanship warranty in addition to the manufacturer's product warranty.", OrderIndex: 3},
}

var defaultServices = []catalog.ServiceInput{
	{
		Title:       "Hardwood Installation",
		Description: "Expert installation of solid and engineered hardwood floors.",
		OrderIndex:  0,
		Features:    []string{"Subfloor inspection", "Moisture testing", "Custom stain matching"},
	},
	{
		Title:       "Floor Refinishing",
		Description: "Sanding, staining and sealing to bring worn floors back to life.",
		OrderIndex:  1,
		Features:    []string{"Dust-contained sanding", "Water-based finishes"},
	},
	{
		Title:       "Tile & Stone",
		Description: "Kitchens, bathrooms and entryways in porcelain, ceramic and natural stone.",
		OrderIndex:  2,
		Features:    []string{"Waterproof membranes", "Heated floor systems"},
	},
}

// SeedResult counts the rows created by one seed run
type SeedResult struct {
	FlooringTypes int
	FAQs          int
	Services      int
}

// Seeder inserts the default catalog content. Rows are matched by name, question or title,
// so running it again only adds what is missing.
type Seeder struct {
	flooringTypes pricing.FlooringTypeService
	faqs          faqs.FAQService
	services      catalog.ServiceCatalogService
	logger        logger.Logger
}

// NewSeeder creates a Seeder over the catalog services
func NewSeeder(flooringTypes pricing.FlooringTypeService, faqService faqs.FAQService, services catalog.ServiceCatalogService, logger logger.Logger) *Seeder {
	return &Seeder{flooringTypes: flooringTypes, faqs: faqService, services: services, logger: logger}
}

// Run seeds every default row that does not exist yet
func (s *Seeder) Run(ctx context.Context) (*SeedResult, error) {
	result := &SeedResult{}

	existingTypes, err := s.flooringTypes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list flooring types: %w", err)
	}
	typeNames := make(map[string]bool, len(existingTypes))
	for _, f := range existingTypes {
		typeNames[strings.ToLower(f.Name)] = true
	}
	for i := range defaultFlooringTypes {
		f := defaultFlooringTypes[i]
		if typeNames[strings.ToLower(f.Name)] {
			continue
		}
		if _, err := s.flooringTypes.Create(ctx, &f); err != nil {
			return nil, fmt.Errorf("failed to seed flooring type %s: %w", f.Name, err)
		}
		result.FlooringTypes++
	}

	existingFAQs, err := s.faqs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}
	questions := make(map[string]bool, len(existingFAQs))
	for _, f := range existingFAQs {
		questions[strings.ToLower(f.Question)] = true
	}
	for i := range defaultFAQs {
		f := defaultFAQs[i]
		if questions[strings.ToLower(f.Question)] {
			continue
		}
		if _, err := s.faqs.Create(ctx, &f); err != nil {
			return nil, fmt.Errorf("failed to seed faq %q: %w", f.Question, err)
		}
		result.FAQs++
	}

	existingServices, err := s.services.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	titles := make(map[string]bool, len(existingServices))
	for _, svc := range existingServices {
		titles[strings.ToLower(svc.Title)] = true
	}
	for i := range defaultServices {
		in := defaultServices[i]
		if titles[strings.ToLower(in.Title)] {
			continue
		}
		if _, err := s.services.Create(ctx, &in); err != nil {
			return nil, fmt.Errorf("failed to seed service %s: %w", in.Title, err)
		}
		result.Services++
	}

	s.logger.Info("Seed completed",
		"flooring_types", result.FlooringTypes, "faqs", result.FAQs, "services", result.Services)
	return result, nil
}

// SeedCommandHandler runs the Seeder against the configured database
type SeedCommandHandler struct {
	logger logger.Logger
}

// NewSeedCommandHandler initializes a SeedCommandHandler with a console logger
func NewSeedCommandHandler() (*SeedCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &SeedCommandHandler{logger: loggerInstance}, nil
}

// SeedCmd creates the default flooring types, FAQs and services
func (commandHandler *SeedCommandHandler) SeedCmd(cmd *cobra.Command, _ []string) error {
	cfg, db, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			commandHandler.logger.Warn("failed to close database", "error", err)
		}
	}()

	// writes go through the services so cached public listings are invalidated
	store, err := cache.NewStore(cmd.Context(), &cfg.Cache, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create cache: %w", err)
	}
	defer store.Close()

	flooringRepo, err := persistence.NewGormFlooringTypeRepository(db, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create flooring type repository: %w", err)
	}
	faqRepo, err := persistence.NewGormFAQRepository(db, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create faq repository: %w", err)
	}
	serviceRepo, err := persistence.NewGormServiceRepository(db, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create service repository: %w", err)
	}

	flooringTypeService, err := app.NewFlooringTypeService(flooringRepo, store, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create flooring type service: %w", err)
	}
	faqService, err := app.NewFAQService(faqRepo, store, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create faq service: %w", err)
	}
	catalogService, err := app.NewServiceCatalogService(serviceRepo, store, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create service catalog service: %w", err)
	}

	_, err = NewSeeder(flooringTypeService, faqService, catalogService, commandHandler.logger).Run(cmd.Context())
	return err
}

// InitSeedCommands registers the seed command
func InitSeedCommands(rootCmd *cobra.Command) error {
	handler, err := NewSeedCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create seed command handler: %w", err)
	}

	var seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Insert default flooring types, FAQs and services",
		Long:  "Insert default flooring types, FAQs and services. Existing rows with the same name, question or title are left untouched.",
		RunE:  handler.SeedCmd,
	}
	rootCmd.AddCommand(seedCmd)
	return nil
}
