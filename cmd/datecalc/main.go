// Калькулятор дат: HTTP сервис и командная строка.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	extdatetime "github.com/ellavs/extdatetime"
	"github.com/ellavs/extdatetime/internal/cache"
	"github.com/ellavs/extdatetime/internal/calc"
	"github.com/ellavs/extdatetime/internal/config"
	"github.com/ellavs/extdatetime/internal/logger"
	"github.com/ellavs/extdatetime/internal/server"
	"github.com/ellavs/extdatetime/internal/tracing"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
)

// Параметры по умолчанию (могут быть изменены через config)
var (
	timezone          = "Local"                    // Часовой пояс по умолчанию.
	outputLayout      = extdatetime.LayoutDateTime // Шаблон вывода дат.
	listenAddr        = ":8080"                    // Адрес HTTP сервера.
	metricsEnabled    = false                      // Отдавать метрики на /metrics.
	tracingEnabled    = false                      // Отправлять трассировку в Jaeger.
	logLevel          = "info"                     // Уровень логирования.
	locationCacheSize = 16                         // Размер кэша часовых поясов.
)

const usage = `Использование:
  datecalc serve                                запуск HTTP сервера
  datecalc now                                  текущий момент
  datecalc eval <дата> <операции> [mutable]     выполнение цепочки, например:
  datecalc eval "2019-12-31 16:17:35" "addMonth:-46,toEndOfDay"
`

func main() {
	defer logger.Sync()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	// Файл конфигурации необязателен для eval и now.
	cfg, err := config.New()
	switch {
	case err == nil:
		if err := cfg.Validate(); err != nil {
			logger.Fatal("Ошибка в файле конфигурации:", "err", err)
		}
		// Изменение параметров по умолчанию из заданной конфигурации.
		setConfigSettings(cfg.GetConfig())
	case os.Args[1] == "serve":
		logger.Fatal("Ошибка получения файла конфигурации:", "err", err)
	}

	if err := logger.SetLevel(logLevel); err != nil {
		logger.Fatal("Ошибка установки уровня логирования:", "err", err)
	}

	locations := cache.NewLocationCache(locationCacheSize)
	loc, err := locations.Load(timezone)
	if err != nil {
		logger.Fatal("Ошибка загрузки часового пояса:", "err", err)
	}
	extdatetime.SetDefaultLocation(loc)

	switch os.Args[1] {
	case "serve":
		err = serve(locations)
	case "now":
		err = printNow(os.Stdout)
	case "eval":
		err = eval(os.Stdout, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		logger.Fatal("Ошибка выполнения команды:", "cmd", os.Args[1], "err", err)
	}
}

// setConfigSettings Замена параметров по умолчанию параметрами из конфиг.файла.
func setConfigSettings(config config.Config) {
	if config.Timezone != "" {
		timezone = config.Timezone
	}
	if config.OutputLayout != "" {
		outputLayout = config.OutputLayout
	}
	if config.ListenAddr != "" {
		listenAddr = config.ListenAddr
	}
	if config.LogLevel != "" {
		logLevel = config.LogLevel
	}
	if config.LocationCacheSize > 0 {
		locationCacheSize = config.LocationCacheSize
	}
	metricsEnabled = config.MetricsEnabled
	tracingEnabled = config.TracingEnabled
}

// serve Запуск HTTP сервера до получения сигнала завершения.
func serve(locations *cache.LocationCache) error {
	logger.Info("Старт приложения")

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)
	defer cancel()

	if tracingEnabled {
		closer, err := tracing.Init("datecalc")
		if err != nil {
			return err
		}
		defer closer.Close()
	}

	srv := server.New(calc.NewEvaluator(), locations, server.Options{
		OutputLayout:   outputLayout,
		MetricsEnabled: metricsEnabled,
	})
	if err := server.Listen(ctx, listenAddr, srv.Routes()); err != nil {
		return err
	}

	logger.Info("Завершение приложения")
	return nil
}

func printNow(w io.Writer) error {
	current, err := extdatetime.CurrentImmutable()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, current.Format(outputLayout))
	return err
}

// eval Выполнение цепочки операций: eval <дата> <операции> [mutable|immutable].
func eval(w io.Writer, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return errors.New("eval: нужны дата и цепочка операций")
	}
	mutable := false
	if len(args) == 3 {
		switch args[2] {
		case "mutable":
			mutable = true
		case "immutable":
		default:
			return errors.Errorf("eval: неизвестный режим %q", args[2])
		}
	}

	input, err := extdatetime.CreateImmutable(args[0], nil)
	if err != nil {
		return err
	}
	ops, err := calc.Parse(args[1])
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	res, err := calc.NewEvaluator().Apply(ctx, input, ops, mutable)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Step", "Time"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("\t")

	table.Append([]string{"input", res.Input.Format(outputLayout)})
	for _, step := range res.Steps {
		table.Append([]string{step.Op.String(), step.Time.Format(outputLayout)})
	}
	table.Append([]string{"result", res.Result.Format(outputLayout)})
	table.Render()
	return nil
}
