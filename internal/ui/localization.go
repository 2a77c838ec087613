package ui

// Localization manages console text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization. Values may contain fmt verbs.
const (
	KeyPromptURL         = "prompt_url"
	KeyFetching          = "fetching"
	KeyMediaTitle        = "media_title"
	KeyCommandFailed     = "command_failed"
	KeyToolNotFound      = "tool_not_found"
	KeyVideoHeading      = "video_heading"
	KeyNoVideo           = "no_video"
	KeyAudioHeading      = "audio_heading"
	KeyNoAudio           = "no_audio"
	KeyPromptMode        = "prompt_mode"
	KeyInvalidChoice     = "invalid_choice"
	KeyPromptVideoID     = "prompt_video_id"
	KeyPromptAudioID     = "prompt_audio_id"
	KeyPromptVideoManual = "prompt_video_manual"
	KeyPromptAudioManual = "prompt_audio_manual"
	KeyAutoHeading       = "auto_heading"
	KeyAutoVideo         = "auto_video"
	KeyAutoAudio         = "auto_audio"
	KeyAutoTotal         = "auto_total"
	KeyPromptConfirm     = "prompt_confirm"
	KeyCancelled         = "cancelled"
	KeyPromptPath        = "prompt_path"
	KeyInvalidPath       = "invalid_path"
	KeyPathNotWritable   = "path_not_writable"
	KeyDownloadMerge     = "download_merge"
	KeyDownloadVideo     = "download_video"
	KeyDownloadAudio     = "download_audio"
	KeyMergeComplete     = "merge_complete"
	KeyDownloadComplete  = "download_complete"
	KeyDownloadFailed    = "download_failed"
	KeyNothingSelected   = "nothing_selected"
	KeyInterrupted       = "interrupted"
	KeyProgress          = "progress"
)

// DefaultLanguage is used when a key or language is missing
const DefaultLanguage = "en"

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: DefaultLanguage,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language; unknown languages are ignored
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	if texts, exists := l.texts[DefaultLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyPromptURL:         "Enter the YouTube video URL: ",
		KeyFetching:          "\n" + IconFetch + " Fetching video information...\n",
		KeyMediaTitle:        IconTitle + " %s\n",
		KeyCommandFailed:     "Command failed: %s",
		KeyToolNotFound:      "Command failed: yt-dlp was not found. Install it or set YTPICK_BINARY.",
		KeyVideoHeading:      IconVideo + " Video Formats (downloadable):",
		KeyNoVideo:           IconVideo + " No downloadable video formats found.",
		KeyAudioHeading:      "\n" + IconAudio + " Audio Formats (downloadable):",
		KeyNoAudio:           "\n" + IconAudio + " No downloadable audio formats found.",
		KeyPromptMode:        "\nDownload options:\n1. Video only\n2. Audio only\n3. Both (auto-pick best)\n4. Manual selection\nEnter 1/2/3/4: ",
		KeyInvalidChoice:     "Invalid choice.",
		KeyPromptVideoID:     "Enter the video format code (e.g. 137): ",
		KeyPromptAudioID:     "Enter the audio format code (e.g. 140): ",
		KeyPromptVideoManual: "Enter the video format code: ",
		KeyPromptAudioManual: "Enter the audio format code: ",
		KeyAutoHeading:       "\n" + IconPin + " Auto-selected formats:",
		KeyAutoVideo:         "  " + IconVideo + " Video: %s - %s - %s - %.1f MiB",
		KeyAutoAudio:         "  " + IconAudio + " Audio: %s - %s - %.1f MiB",
		KeyAutoTotal:         "  " + IconPackage + " Estimated total size: %.1f MiB",
		KeyPromptConfirm:     "\nProceed with this selection? (Y/n): ",
		KeyCancelled:         "Cancelled.",
		KeyPromptPath:        "Enter full destination path (e.g. ~/Videos): ",
		KeyInvalidPath:       "Invalid path. Directory does not exist.",
		KeyPathNotWritable:   "Invalid path. Directory is not writable.",
		KeyDownloadMerge:     "\nDownloading and merging video (%s) + audio (%s)...",
		KeyDownloadVideo:     "\nDownloading video-only format %s...",
		KeyDownloadAudio:     "\nDownloading audio-only format %s...",
		KeyMergeComplete:     "Download and merge complete.",
		KeyDownloadComplete:  "Download complete.",
		KeyDownloadFailed:    "Download failed: %s",
		KeyNothingSelected:   "No format selected.",
		KeyInterrupted:       "Interrupted.",
		KeyProgress:          "  %s: %.1f%% (ETA %s)",
	}

	l.texts["ru"] = map[string]string{
		KeyPromptURL:         "Введите ссылку на видео YouTube: ",
		KeyFetching:          "\n" + IconFetch + " Получение информации о видео...\n",
		KeyMediaTitle:        IconTitle + " %s\n",
		KeyCommandFailed:     "Ошибка команды: %s",
		KeyToolNotFound:      "Ошибка команды: yt-dlp не найден. Установите его или задайте YTPICK_BINARY.",
		KeyVideoHeading:      IconVideo + " Видеоформаты (доступны для загрузки):",
		KeyNoVideo:           IconVideo + " Видеоформаты для загрузки не найдены.",
		KeyAudioHeading:      "\n" + IconAudio + " Аудиоформаты (доступны для загрузки):",
		KeyNoAudio:           "\n" + IconAudio + " Аудиоформаты для загрузки не найдены.",
		KeyPromptMode:        "\nВарианты загрузки:\n1. Только видео\n2. Только аудио\n3. Видео и аудио (автовыбор)\n4. Ручной выбор\nВведите 1/2/3/4: ",
		KeyInvalidChoice:     "Неверный выбор.",
		KeyPromptVideoID:     "Введите код видеоформата (например, 137): ",
		KeyPromptAudioID:     "Введите код аудиоформата (например, 140): ",
		KeyPromptVideoManual: "Введите код видеоформата: ",
		KeyPromptAudioManual: "Введите код аудиоформата: ",
		KeyAutoHeading:       "\n" + IconPin + " Автоматически выбранные форматы:",
		KeyAutoVideo:         "  " + IconVideo + " Видео: %s - %s - %s - %.1f MiB",
		KeyAutoAudio:         "  " + IconAudio + " Аудио: %s - %s - %.1f MiB",
		KeyAutoTotal:         "  " + IconPackage + " Ожидаемый общий размер: %.1f MiB",
		KeyPromptConfirm:     "\nПродолжить с этим выбором? (Y/n): ",
		KeyCancelled:         "Отменено.",
		KeyPromptPath:        "Введите полный путь назначения (например, ~/Videos): ",
		KeyInvalidPath:       "Неверный путь. Каталог не существует.",
		KeyPathNotWritable:   "Неверный путь. Нет прав на запись в каталог.",
		KeyDownloadMerge:     "\nЗагрузка и объединение видео (%s) + аудио (%s)...",
		KeyDownloadVideo:     "\nЗагрузка видеоформата %s...",
		KeyDownloadAudio:     "\nЗагрузка аудиоформата %s...",
		KeyMergeComplete:     "Загрузка и объединение завершены.",
		KeyDownloadComplete:  "Загрузка завершена.",
		KeyDownloadFailed:    "Ошибка загрузки: %s",
		KeyNothingSelected:   "Формат не выбран.",
		KeyInterrupted:       "Прервано.",
		KeyProgress:          "  %s: %.1f%% (осталось %s)",
	}
}
