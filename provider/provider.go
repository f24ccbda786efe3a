package provider

import (
	"class-show/biz/application/service"
	"class-show/biz/infrastructure/cache"
	"class-show/biz/infrastructure/config"
	"class-show/biz/infrastructure/repository/class"
	"class-show/biz/infrastructure/repository/document"
	"class-show/biz/infrastructure/repository/homework"
	"class-show/biz/infrastructure/repository/schedule"
	"class-show/biz/infrastructure/repository/user"

	"github.com/google/wire"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config            *config.Config
	AuthService       service.AuthService
	ClassService      service.ClassService
	EnrollmentService service.EnrollmentService
	HomeworkService   service.HomeworkService
	SubmissionService service.SubmissionService
	DocumentService   service.DocumentService
	ScheduleService   service.ScheduleService
	StsService        service.StsService
}

func Get() *Provider {
	return provider
}

var ApplicationSet = wire.NewSet(
	service.AuthServiceSet,
	service.ClassServiceSet,
	service.EnrollmentServiceSet,
	service.HomeworkServiceSet,
	service.SubmissionServiceSet,
	service.DocumentServiceSet,
	service.ScheduleServiceSet,
	service.StsServiceSet,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	user.NewMongoMapper,
	wire.Bind(new(user.IMongoMapper), new(*user.MongoMapper)),
	class.NewMongoMapper,
	wire.Bind(new(class.IMongoMapper), new(*class.MongoMapper)),
	class.NewEnrollmentMongoMapper,
	wire.Bind(new(class.IEnrollmentMongoMapper), new(*class.EnrollmentMongoMapper)),
	homework.NewMongoMapper,
	wire.Bind(new(homework.IMongoMapper), new(*homework.MongoMapper)),
	homework.NewSubmissionMongoMapper,
	wire.Bind(new(homework.ISubmissionMongoMapper), new(*homework.SubmissionMongoMapper)),
	document.NewMongoMapper,
	wire.Bind(new(document.IMongoMapper), new(*document.MongoMapper)),
	schedule.NewMongoMapper,
	wire.Bind(new(schedule.IMongoMapper), new(*schedule.MongoMapper)),
	cache.NewAnalyticsCacheMapper,
	wire.Bind(new(cache.IAnalyticsCacheMapper), new(*cache.AnalyticsCacheMapper)),
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
