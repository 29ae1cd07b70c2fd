package resources

import (
	"context"
	"io"
	"net/http"
	"os"
	"path"

	"github.com/npillmayer/blockface/core"
	"github.com/npillmayer/blockface/core/font"
	"github.com/npillmayer/blockface/core/font/bffmt"
	"github.com/npillmayer/schuko/gconf"
)

// DownloadCachedFile will download a url to a local file (usually located in
// the user's cache directory).
func DownloadCachedFile(filepath string, url string) error {
	resp, err := http.Get(url)
	if err != nil {
		return core.WrapError(err, core.ECONNECTION, "could not get font from %s", url)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return core.Error(core.ECONNECTION, "font download from %s: %s", url, resp.Status)
	}
	out, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, resp.Body)
	return err
}

// CacheDirPath checks and possibly creates a folder in the user's cache
// directory. The base cache directory is taken from `os.UserCacheDir()`, plus
// an application specific key, taken as `app-key` from the global configuration.
// Clients may specify a sequence of folder names, which will be appended to
// the base cache path. Non-existing sub-folders will be created as necessary
// (with permissions 755).
func CacheDirPath(subfolders ...string) (string, error) {
	tracer().Debugf("config[%s] = %s", "app-key", gconf.GetString("app-key"))
	if gconf.GetString("app-key") == "" {
		tracer().Errorf("application key is not set")
	}
	cachedir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	subs := path.Join(subfolders...)
	cachedir = path.Join(cachedir, gconf.GetString("app-key"), subs)
	tracer().Infof("caching in %s", cachedir)
	_, err = os.Stat(cachedir)
	if os.IsNotExist(err) {
		err = os.MkdirAll(cachedir, 0755)
		if err != nil {
			return "", err
		}
	}
	return cachedir, nil
}

// ResolveRemoteBlockFont resolves a font definition source located at a URL,
// caching the downloaded file in the user's cache directory. A font already
// present in the cache is not downloaded again.
func ResolveRemoteBlockFont(name string, url string) BlockFontPromise {
	ch := make(chan fontPlusErr)
	go func(ch chan<- fontPlusErr) {
		result := fontPlusErr{}
		if f := font.GlobalRegistry().Font(name); f != nil {
			result.font = f
			ch <- result
			close(ch)
			return
		}
		cachedir, err := CacheDirPath("fonts")
		if err != nil {
			result.err = err
		} else {
			filepath := path.Join(cachedir, font.NormalizeFontname(name)+".bf")
			if _, err := os.Stat(filepath); os.IsNotExist(err) {
				result.err = DownloadCachedFile(filepath, url)
			}
			if result.err == nil {
				var file *os.File
				if file, result.err = os.Open(filepath); result.err == nil {
					defer file.Close()
					result.font, result.err = bffmt.Decode(file)
				}
			}
		}
		if result.font != nil {
			result.font.Fontname = font.NormalizeFontname(name)
			font.GlobalRegistry().StoreFont(result.font)
		}
		ch <- result
		close(ch)
	}(ch)
	return fontLoader{
		await: func(ctx context.Context) (*font.BlockFont, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case result := <-ch:
				return result.font, result.err
			}
		},
	}
}
