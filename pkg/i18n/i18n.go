package i18n

type Messages struct {
	// SearchMany takes (workers, count, prefix); SearchAll takes (workers, prefix).
	SearchMany  string
	SearchAll   string
	Done        string
	Interrupted string
	// VerifyOK takes (count, file).
	VerifyOK string
}

func Get(lang string) Messages {
	switch lang {
	case "ru":
		return Messages{
			SearchMany:  "Используем %d воркер(ов) для поиска %d адрес(ов), начинающихся с %s",
			SearchAll:   "Используем %d воркер(ов) для поиска адресов, начинающихся с %s",
			Done:        "Поиск завершён.",
			Interrupted: "Поиск остановлен.",
			VerifyOK:    "Проверено записей: %d (%s)",
		}
	default: // "en"
		return Messages{
			SearchMany:  "Using %d worker(s) to search for %d address(es) starting with %s",
			SearchAll:   "Using %d worker(s) to search for addresses starting with %s",
			Done:        "Search complete.",
			Interrupted: "Search stopped.",
			VerifyOK:    "Verified %d record(s) in %s",
		}
	}
}
