package services

import (
	"github.com/kwizera-io/go-momo-etl/internal/common/idgenerator"
	"github.com/kwizera-io/go-momo-etl/internal/config"
	"github.com/kwizera-io/go-momo-etl/internal/repositories"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	sqlRepo     repositories.SQLRepository
	idgenerator idgenerator.Generator
	rules       []CategoryRule

	common service

	Pipeline *pipeline
	Category *category
	Seeder   *seeder
}

func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	idgen idgenerator.Generator,
	rules []CategoryRule,
) *Services {
	s := &Services{
		conf:        conf,
		sqlRepo:     sqlRepo,
		idgenerator: idgen,
		rules:       rules,
	}
	s.common.srv = s
	s.Pipeline = (*pipeline)(&s.common)
	s.Category = (*category)(&s.common)
	s.Seeder = (*seeder)(&s.common)

	return s
}
