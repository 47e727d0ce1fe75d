package report

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"github.com/IT-Nick/quizbot/session"
)

const (
	// defaultPerPage — сколько вопросов размещается на одной странице отчёта.
	defaultPerPage = 5
	// imageWidth — ширина встраиваемой картинки в миллиметрах.
	imageWidth = 60.0
)

// Builder генерирует PDF-отчёт по итогам викторины.
// Шрифт и картинки — необязательные ресурсы: их отсутствие или повреждение
// деградирует отчёт (транслитерация, пропуск картинки), но не срывает его.
type Builder struct {
	ImagesDir string   // Каталог с картинками вопросов.
	FontPaths []string // Кандидаты на Unicode-шрифт в порядке приоритета.
	PerPage   int      // Вопросов на страницу; ноль — значение по умолчанию.
}

// resolvedFont — результат подбора шрифта: имя семейства и признак того,
// что шрифт покрывает кириллицу.
type resolvedFont struct {
	family  string
	unicode bool
}

// Build формирует PDF-файл во временном каталоге и возвращает путь к нему.
// Файл обязан удалить вызывающий — и при успешной доставке, и при ошибке.
func (b *Builder) Build(res session.Result) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)

	font := b.resolveFont(pdf)
	// При откате на встроенный шрифт весь текст транслитерируется.
	text := func(s string) string {
		if font.unicode {
			return s
		}
		return Transliterate(s)
	}

	perPage := b.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}

	// Заголовок отчёта.
	pdf.AddPage()
	pdf.SetFont(font.family, "B", 16)
	pdf.MultiCell(0, 10, text("Отчёт по викторине"), "", "L", false)
	pdf.SetFont(font.family, "", 12)
	info := fmt.Sprintf("Тема: %s\nРезультат: %d правильных ответов из %d", res.Topic, res.Score, len(res.Records))
	pdf.MultiCell(0, 8, text(info), "", "L", false)
	pdf.Ln(4)

	for i, rec := range res.Records {
		if i > 0 && i%perPage == 0 {
			pdf.AddPage()
		}
		// В PDF маркер пишется словом: эмодзи встроенные шрифты не покрывают.
		mark := "НЕВЕРНО"
		if rec.Correct {
			mark = "ВЕРНО"
		}
		pdf.SetFont(font.family, "B", 12)
		pdf.MultiCell(0, 8, text(fmt.Sprintf("%s. Вопрос %d", mark, i+1)), "", "L", false)
		pdf.SetFont(font.family, "", 12)
		pdf.MultiCell(0, 8, text(rec.Question), "", "L", false)
		pdf.MultiCell(0, 8, text("Верный ответ: "+rec.CorrectAnswer), "", "L", false)
		b.placeImage(pdf, rec.ImageFile, text)
		pdf.Ln(4)
	}

	tmp, err := os.CreateTemp("", "quiz_report_*.pdf")
	if err != nil {
		return "", fmt.Errorf("не удалось создать временный файл отчёта: %w", err)
	}
	name := tmp.Name()
	_ = tmp.Close()
	if err := pdf.OutputFileAndClose(name); err != nil {
		_ = os.Remove(name)
		return "", fmt.Errorf("не удалось записать PDF-отчёт: %w", err)
	}
	return name, nil
}

// resolveFont регистрирует первый пригодный шрифт из списка кандидатов.
// Если ни один файл не существует или не загружается, используется встроенный
// Helvetica, а вызывающая сторона транслитерирует текст.
func (b *Builder) resolveFont(pdf *gofpdf.Fpdf) resolvedFont {
	for _, path := range b.FontPaths {
		if !looksLikeTTF(path) {
			continue
		}
		pdf.AddUTF8Font("Unicode", "", path)
		pdf.AddUTF8Font("Unicode", "B", path)
		if pdf.Err() {
			log.Printf("Шрифт %s не загрузился: %v", path, pdf.Error())
			pdf.ClearError()
			continue
		}
		return resolvedFont{family: "Unicode", unicode: true}
	}
	log.Printf("Unicode-шрифт не найден, текст отчёта будет транслитерирован")
	return resolvedFont{family: "Helvetica"}
}

// looksLikeTTF проверяет сигнатуру файла шрифта. Парсер шрифтов не переживает
// произвольный мусор, поэтому файл без известной сигнатуры отсеивается заранее.
func looksLikeTTF(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	var magic [4]byte
	if _, err := io.ReadFull(f, magic[:]); err != nil {
		log.Printf("Шрифт %s не читается: %v", path, err)
		return false
	}
	switch string(magic[:]) {
	case "\x00\x01\x00\x00", "true", "ttcf", "OTTO":
		return true
	}
	log.Printf("Файл %s не похож на TTF-шрифт", path)
	return false
}

// placeImage встраивает картинку записи, если она существует и декодируется.
// Отсутствующий файл пропускается с предупреждением; существующий, но битый
// файл заменяется текстовой заглушкой.
func (b *Builder) placeImage(pdf *gofpdf.Fpdf, name string, text func(string) string) {
	if name == "" {
		return
	}
	path := filepath.Join(b.ImagesDir, name)
	f, err := os.Open(path)
	if err != nil {
		log.Printf("Картинка не найдена: %s", path)
		return
	}
	_, _, err = image.DecodeConfig(f)
	_ = f.Close()
	if err != nil {
		log.Printf("Картинка %s не декодируется: %v", path, err)
		pdf.MultiCell(0, 8, text(fmt.Sprintf("[изображение %s не удалось отобразить]", name)), "", "L", false)
		return
	}
	pdf.Ln(2)
	pdf.ImageOptions(path, -1, 0, imageWidth, 0, true, gofpdf.ImageOptions{}, 0, "")
	if pdf.Err() {
		// Заголовок картинки прошёл проверку, но полная загрузка не удалась.
		log.Printf("Не удалось встроить картинку %s: %v", path, pdf.Error())
		pdf.ClearError()
		pdf.MultiCell(0, 8, text(fmt.Sprintf("[изображение %s не удалось отобразить]", name)), "", "L", false)
	}
}
