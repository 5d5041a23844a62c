// Команда staticlint запускает набор статических анализаторов проекта.
//
// Состав:
//   - стандартные анализаторы golang.org/x/tools/go/analysis/passes;
//   - все анализаторы класса SA из honnef.co/go/tools/staticcheck;
//   - выбранные анализаторы simple (S) и stylecheck (ST);
//   - nilerr: возврат nil вместо проверенной ошибки;
//   - bodyclose: незакрытое тело http.Response;
//   - osexit: прямой вызов os.Exit в main.main.
//
// Запуск: staticlint ./...
package main

import (
	"github.com/avc-dev/brevly/internal/analyzers/osexit"
	"github.com/gostaticanalysis/nilerr"
	"github.com/timakin/bodyclose/passes/bodyclose"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/appends"
	"golang.org/x/tools/go/analysis/passes/assign"
	"golang.org/x/tools/go/analysis/passes/atomic"
	"golang.org/x/tools/go/analysis/passes/bools"
	"golang.org/x/tools/go/analysis/passes/composite"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/loopclosure"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilfunc"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/shift"
	"golang.org/x/tools/go/analysis/passes/stdmethods"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/tests"
	"golang.org/x/tools/go/analysis/passes/unmarshal"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"
)

// extraChecks анализаторы из simple и stylecheck, включённые помимо SA
var extraChecks = map[string]struct{}{
	"S1002":  {}, // сравнение bool с константой
	"S1005":  {}, // лишний blank identifier
	"S1011":  {}, // цикл вместо append(a, b...)
	"ST1005": {}, // формат текста ошибок
	"ST1019": {}, // повторный импорт пакета
}

func main() {
	analyzers := []*analysis.Analyzer{
		appends.Analyzer,
		assign.Analyzer,
		atomic.Analyzer,
		bools.Analyzer,
		composite.Analyzer,
		copylock.Analyzer,
		errorsas.Analyzer,
		httpresponse.Analyzer,
		loopclosure.Analyzer,
		lostcancel.Analyzer,
		nilfunc.Analyzer,
		printf.Analyzer,
		shadow.Analyzer,
		shift.Analyzer,
		stdmethods.Analyzer,
		structtag.Analyzer,
		tests.Analyzer,
		unmarshal.Analyzer,
		unreachable.Analyzer,
		unusedresult.Analyzer,

		nilerr.Analyzer,
		bodyclose.Analyzer,
		osexit.Analyzer,
	}

	for _, a := range staticcheck.Analyzers {
		analyzers = append(analyzers, a.Analyzer)
	}

	for _, a := range simple.Analyzers {
		if _, ok := extraChecks[a.Analyzer.Name]; ok {
			analyzers = append(analyzers, a.Analyzer)
		}
	}

	for _, a := range stylecheck.Analyzers {
		if _, ok := extraChecks[a.Analyzer.Name]; ok {
			analyzers = append(analyzers, a.Analyzer)
		}
	}

	multichecker.Main(analyzers...)
}
