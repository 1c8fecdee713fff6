package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/gorm"

	"renotrack/internal/db"
	"renotrack/internal/i18n"
	"renotrack/internal/models"
	"renotrack/internal/services"
	"renotrack/internal/storage"
)

type Handler struct {
	repos        *db.Repositories
	authService  *services.AuthService
	rooms        *services.RoomService
	purchases    *services.PurchaseService
	workSessions *services.WorkSessionService
	stats        *services.StatsService
	choices      *services.ChoiceService
	equipment    *services.EquipmentService
	export       *services.ExportService
	uploads      *storage.LocalStore
	i18n         *i18n.Manager
	secretKey    []byte
	cookieSecure bool
	templates    map[string]*template.Template
}

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

var pageTemplates = []string{
	"login",
	"register",
	"dashboard",
	"properties",
	"property_form",
	"rooms",
	"room_form",
	"room_detail",
	"progress_form",
	"purchases",
	"purchase_form",
	"sessions",
	"session_form",
	"circuits",
	"circuit_form",
	"equipment",
	"equipment_detail",
	"equipment_form",
	"choices",
	"choice_form",
	"todo",
}

func NewHandler(database *gorm.DB, secret string, templateDir string, uploads *storage.LocalStore, i18nManager *i18n.Manager, cookieSecure bool) (*Handler, error) {
	if i18nManager == nil {
		return nil, errors.New("i18n manager is required")
	}
	if uploads == nil {
		return nil, errors.New("upload store is required")
	}

	repos := db.NewRepositories(database)

	funcMap := template.FuncMap{
		"formatDate": func(value time.Time, layout string) string {
			if value.IsZero() {
				return ""
			}
			return value.Format(layout)
		},
		"formatDatePtr": func(value *time.Time, layout string) string {
			if value == nil || value.IsZero() {
				return ""
			}
			return value.Format(layout)
		},
		"formatMoney": func(cents int64) string {
			return models.FormatCents(cents)
		},
		"formatMoneyPtr": func(cents *int64) string {
			if cents == nil {
				return ""
			}
			return models.FormatCents(*cents)
		},
		"formatHours": func(value float64) string {
			return fmt.Sprintf("%.1f", value)
		},
		"formatTime": func(minuteOfDay int) string {
			return services.FormatMinuteOfDay(minuteOfDay)
		},
		"formatTimePtr": func(minuteOfDay *int) string {
			if minuteOfDay == nil {
				return ""
			}
			return services.FormatMinuteOfDay(*minuteOfDay)
		},
		"t": func(messages map[string]string, key string) string {
			return translateMessage(messages, key)
		},
		"isActiveRoute": func(currentPath string, route string) bool {
			path := strings.TrimSpace(currentPath)
			if path == "" {
				return route == "/"
			}
			if route == "/" {
				return path == "/" || strings.HasPrefix(path, "/?")
			}
			return path == route || strings.HasPrefix(path, route+"?") || strings.HasPrefix(path, route+"/")
		},
		"containsString": func(values []string, value string) bool {
			for _, candidate := range values {
				if candidate == value {
					return true
				}
			}
			return false
		},
		"toJSON": func(value any) template.JS {
			serialized, _ := json.Marshal(value)
			return template.JS(serialized)
		},
	}

	templates := make(map[string]*template.Template)
	for _, page := range pageTemplates {
		parsed, err := template.New("base").Funcs(funcMap).ParseFiles(
			filepath.Join(templateDir, "base.html"),
			filepath.Join(templateDir, page+".html"),
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = parsed
	}

	return &Handler{
		repos:        repos,
		authService:  services.NewAuthService(repos.Users),
		rooms:        services.NewRoomService(repos.Rooms),
		purchases:    services.NewPurchaseService(repos.Purchases),
		workSessions: services.NewWorkSessionService(repos.Sessions, repos.Rooms),
		stats:        services.NewStatsService(repos.Purchases, repos.Sessions, repos.Rooms, repos.Progress),
		choices:      services.NewChoiceService(repos.Choices),
		equipment:    services.NewEquipmentService(repos.Equipment),
		export:       services.NewExportService(repos.Purchases, repos.Sessions),
		uploads:      uploads,
		i18n:         i18nManager,
		secretKey:    []byte(secret),
		cookieSecure: cookieSecure,
		templates:    templates,
	}, nil
}
