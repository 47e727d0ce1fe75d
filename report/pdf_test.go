package report

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IT-Nick/quizbot/session"
)

// writePNG создаёт маленькую валидную картинку в каталоге dir.
func writePNG(t *testing.T, dir, name string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), B: 100, A: 255})
		}
	}
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("Ошибка создания файла картинки: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Ошибка кодирования PNG: %v", err)
	}
}

// checkPDF проверяет, что по пути лежит непустой PDF-файл, и удаляет его.
func checkPDF(t *testing.T, path string) {
	t.Helper()
	defer os.Remove(path)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Ошибка чтения артефакта: %v", err)
	}
	if len(data) < 4 {
		t.Fatalf("Артефакт пустой")
	}
	if !strings.HasPrefix(string(data[:4]), "%PDF") {
		t.Errorf("Артефакт не похож на PDF: %q", data[:4])
	}
}

// pdfResult собирает итог с тремя записями; картинку несёт вторая запись.
func pdfResult(imageFile string) session.Result {
	return session.Result{
		Topic: "наука",
		Score: 2,
		Records: []session.AnswerRecord{
			{Index: 0, Question: "Первый вопрос", CorrectAnswer: "Да", Correct: true},
			{Index: 1, Question: "Второй вопрос", CorrectAnswer: "Нет", ImageFile: imageFile, Correct: false},
			{Index: 2, Question: "Третий вопрос", CorrectAnswer: "Да", Correct: true},
		},
	}
}

// TestBuild_NoFont проверяет откат на встроенный шрифт: без единого
// существующего шрифта отчёт всё равно собирается (текст транслитерируется).
func TestBuild_NoFont(t *testing.T) {
	b := &Builder{
		ImagesDir: t.TempDir(),
		FontPaths: []string{filepath.Join(t.TempDir(), "нет_шрифта.ttf")},
	}
	path, err := b.Build(pdfResult(""))
	if err != nil {
		t.Fatalf("Build вернул ошибку: %v", err)
	}
	checkPDF(t, path)
}

// TestBuild_CorruptFont проверяет, что файл, который не является шрифтом,
// пропускается и отчёт собирается на встроенном шрифте.
func TestBuild_CorruptFont(t *testing.T) {
	dir := t.TempDir()
	badFont := filepath.Join(dir, "broken.ttf")
	if err := os.WriteFile(badFont, []byte("это не шрифт"), 0644); err != nil {
		t.Fatalf("Ошибка записи файла: %v", err)
	}
	b := &Builder{ImagesDir: dir, FontPaths: []string{badFont}}
	path, err := b.Build(pdfResult(""))
	if err != nil {
		t.Fatalf("Build вернул ошибку: %v", err)
	}
	checkPDF(t, path)
}

// TestBuild_WithImage проверяет встраивание существующей картинки.
func TestBuild_WithImage(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "q2.png")
	b := &Builder{ImagesDir: dir}
	path, err := b.Build(pdfResult("q2.png"))
	if err != nil {
		t.Fatalf("Build вернул ошибку: %v", err)
	}
	checkPDF(t, path)
}

// TestBuild_MissingImage проверяет, что ссылка на несуществующий файл
// не мешает собрать отчёт.
func TestBuild_MissingImage(t *testing.T) {
	b := &Builder{ImagesDir: t.TempDir()}
	path, err := b.Build(pdfResult("нет_такой.png"))
	if err != nil {
		t.Fatalf("Build вернул ошибку: %v", err)
	}
	checkPDF(t, path)
}

// TestBuild_CorruptImage проверяет, что битый файл картинки деградирует
// до текстовой заглушки, а не срывает отчёт.
func TestBuild_CorruptImage(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.png"), []byte("не картинка"), 0644); err != nil {
		t.Fatalf("Ошибка записи файла: %v", err)
	}
	b := &Builder{ImagesDir: dir}
	path, err := b.Build(pdfResult("bad.png"))
	if err != nil {
		t.Fatalf("Build вернул ошибку: %v", err)
	}
	checkPDF(t, path)
}

// TestBuild_ManyRecords проверяет постраничную разбивку: записей больше,
// чем помещается на страницу.
func TestBuild_ManyRecords(t *testing.T) {
	res := session.Result{Topic: "наука"}
	for i := 0; i < 12; i++ {
		res.Records = append(res.Records, session.AnswerRecord{
			Index:         i,
			Question:      "Вопрос с достаточно длинным текстом для переноса строк",
			CorrectAnswer: "Ответ",
			Correct:       i%3 != 0,
		})
	}
	b := &Builder{ImagesDir: t.TempDir(), PerPage: 5}
	path, err := b.Build(res)
	if err != nil {
		t.Fatalf("Build вернул ошибку: %v", err)
	}
	checkPDF(t, path)
}
