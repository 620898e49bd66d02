package session

import (
	"errors"
	"fmt"

	"github.com/warpdl/unduh/internal/ytdl"
)

// Console text.
const (
	bannerTitle   = "=== Social Media Downloader ==="
	bannerRule    = "==========================="
	bannerExit    = "Press Ctrl+C to exit"
	promptURL     = "\nMasukkan link media sosial: "
	promptDir     = "Masukkan folder output (kosongkan untuk default): "
	promptConfirm = "\nLanjutkan download? (y/n): "
	promptCookies = "Ambil cookies dari browser untuk login? (y/n): "
	promptAgain   = "\nIngin download media lain? (y/n)"
	promptRetry   = "\nDownload gagal. Coba lagi? (y/n)"

	msgEmptyURL    = "Link tidak boleh kosong!"
	msgPlatform    = "Detected platform: %s"
	msgFromURL     = "Downloading from: %s"
	msgCookies     = "Mengambil cookies dari browser..."
	msgNoCookies   = "Tidak ada cookies browser yang ditemukan, lanjut tanpa login."
	msgCookiesFrom = "Cookies diambil dari %s."
	msgDone        = "\nDownload completed successfully! Files saved to: %s"
	msgTerminated  = "Program terminated."

	errSignIn      = "Error: YouTube meminta verifikasi. Pastikan Anda login di browser!"
	errUnavailable = "Error: Video tidak tersedia atau private"
	errGeneric     = "Error downloading: %s"
	errNoInfo      = "Tidak dapat mengekstrak informasi media"
	errMkdir       = "Error: tidak dapat membuat folder output: %s"
)

// errOutputDir marks a failure to create the output directory.
type errOutputDir struct{ err error }

func (e errOutputDir) Error() string { return e.err.Error() }
func (e errOutputDir) Unwrap() error { return e.err }

// Explain turns a failed attempt into the line shown to the user.
func Explain(err error) string {
	var dirErr errOutputDir
	switch {
	case errors.As(err, &dirErr):
		return fmt.Sprintf(errMkdir, dirErr.err)
	case errors.Is(err, ytdl.ErrNoInfo):
		return errNoInfo
	}
	switch ytdl.KindOf(err) {
	case ytdl.KindSignIn:
		return errSignIn
	case ytdl.KindUnavailable:
		return errUnavailable
	}
	return fmt.Sprintf(errGeneric, err)
}
