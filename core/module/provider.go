package module

// CoreModuleProvider supplies the framework modules (settings, pages, search)
type CoreModuleProvider interface {
	GetCoreModules(deps Dependencies) []Entry
}

// AppModuleProvider supplies the content plugin modules
type AppModuleProvider interface {
	GetAppModules(deps Dependencies) []Entry
}

// Orchestrator initializes core modules first, then app modules
type Orchestrator struct {
	initializer *Initializer
	core        CoreModuleProvider
	app         AppModuleProvider
}

// NewOrchestrator creates a module orchestrator
func NewOrchestrator(initializer *Initializer, core CoreModuleProvider, app AppModuleProvider) *Orchestrator {
	return &Orchestrator{
		initializer: initializer,
		core:        core,
		app:         app,
	}
}

// InitializeAll initializes every module and returns those that succeeded
func (o *Orchestrator) InitializeAll(deps Dependencies) []Module {
	var initialized []Module
	if o.core != nil {
		initialized = append(initialized, o.initializer.Initialize(o.core.GetCoreModules(deps), deps)...)
	}
	if o.app != nil {
		initialized = append(initialized, o.initializer.Initialize(o.app.GetAppModules(deps), deps)...)
	}
	return initialized
}
