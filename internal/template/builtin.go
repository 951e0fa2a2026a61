package template

// RegisterBuiltins adds the stock template catalog to an engine
func RegisterBuiltins(engine *Engine) {
	engine.Register(networkRequestTemplate())
	engine.Register(fileDownloadTemplate())
	engine.Register(textPipelineTemplate())
	engine.Register(greetingTemplate())
}

func paramDefault(v ParamValue) *ParamValue {
	return &v
}
