package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/lang"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	"golang.org/x/text/language"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/flinesoft/prayer/internal/app"
	"github.com/flinesoft/prayer/internal/app/settings"
	"github.com/flinesoft/prayer/internal/app/ui"
)

const (
	appID           = "com.flinesoft.prayer"
	feedbackAddress = "prayer@flinesoft.com"
	versionFallback = "0.0.0"
)

// defined flags
var (
	levelFlag         logLevelFlag
	logFileFlag       = flag.Bool("logfile", true, "Write logs to a file instead of the console")
	resetSettingsFlag = flag.Bool("reset-settings", false, "Resets all prayer settings to their defaults")
	showDirsFlag      = flag.Bool("show-dirs", false, "Show directories where user data is stored")
	uninstallFlag     = flag.Bool("uninstall", false, "Uninstalls the app by deleting all user files")
)

func init() {
	levelFlag.value = slog.LevelInfo
	flag.Var(&levelFlag, "loglevel", "set log level")
}

func main() {
	flag.Parse()
	slog.SetLogLoggerLevel(levelFlag.value)
	fyneApp := fyneapp.NewWithID(appID)
	ad := newAppDirs(fyneApp)
	if *showDirsFlag {
		fmt.Printf("Logs: %s\n", ad.log)
		fmt.Printf("Settings: %s\n", ad.settings)
		return
	}
	if *uninstallFlag {
		fmt.Print("Are you sure you want to uninstall this app and delete all user files (y/N)?")
		var input string
		fmt.Scanln(&input)
		if strings.ToLower(input) == "y" {
			if err := ad.deleteAll(); err != nil {
				log.Fatal(err)
			}
			fmt.Println("App uninstalled")
		} else {
			fmt.Println("Aborted")
		}
		return
	}
	if *logFileFlag {
		fn, err := ad.initLogFile()
		if err != nil {
			log.Fatal(err)
		}
		log.SetOutput(&lumberjack.Logger{
			Filename:   fn,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		})
	}

	s := settings.New(fyneApp.Preferences())
	s.SetLanguageFallback(systemLanguageCode())
	if *resetSettingsFlag {
		s.Reset()
		slog.Info("Settings reset")
	}

	v := fyneApp.Metadata().Version
	if v == "" {
		v = versionFallback
	}
	w := fyneApp.NewWindow("")
	c, err := ui.NewCoordinator(ui.CoordinatorParams{
		App:             fyneApp,
		FeedbackAddress: feedbackAddress,
		Settings:        s,
		Version:         v,
		Window:          w,
	})
	if err != nil {
		log.Fatal(err)
	}
	c.SettingsChanged.AddListener(func(_ context.Context, x app.SettingsSnapshot) {
		slog.Info("Settings changed", "settings", x)
	})
	w.SetContent(fynetooltip.AddWindowToolTipLayer(c.Content(), w.Canvas()))
	w.Resize(fyne.NewSize(600, 800))
	w.SetMaster()
	w.ShowAndRun()
}

// systemLanguageCode returns the base language of the system locale, e.g. "de" for "de-AT".
func systemLanguageCode() string {
	tag, err := language.Parse(string(lang.SystemLocale()))
	if err != nil {
		return app.LanguageCodeDefault
	}
	base, _ := tag.Base()
	return base.String()
}
