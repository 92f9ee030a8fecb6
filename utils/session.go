package utils

import (
	"errors"

	"anket.link/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

var ErrSessionStoreMissing = errors.New("session store bulunamadı")

// SessionStart istekteki oturumu açar. Store, router tarafından
// c.Locals("session_store") içine konur.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, ErrSessionStoreMissing
	}
	return store.Get(c)
}

// GetUserIDFromSession oturumdan kullanıcı ID'sini okur.
func GetUserIDFromSession(sess *session.Session) (uint, error) {
	id, ok := sess.Get("user_id").(uint)
	if !ok || id == 0 {
		return 0, errors.New("oturumda kullanıcı yok")
	}
	return id, nil
}

// GetIsSystemFromSession oturumdan sistem kullanıcısı bayrağını okur.
func GetIsSystemFromSession(sess *session.Session) (bool, error) {
	isSystem, ok := sess.Get("is_system").(bool)
	if !ok {
		return false, errors.New("oturumda is_system yok")
	}
	return isSystem, nil
}

// SetUserSession giriş yapan kullanıcının bilgilerini oturuma yazar.
func SetUserSession(sess *session.Session, user *models.User) error {
	sess.Set("user_id", user.ID)
	sess.Set("user_name", user.Name)
	sess.Set("is_system", user.IsSystem)
	return sess.Save()
}

// DestroySession oturumu sonlandırır.
func DestroySession(c *fiber.Ctx) error {
	sess, err := SessionStart(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}
