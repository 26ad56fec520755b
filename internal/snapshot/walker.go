package snapshot

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spel/spel/internal/facade"
)

// walkerScript is evaluated in the page via Page.EvaluateJS. It mirrors the
// role/name computation of the original a11yTree walker (same
// IMPLICIT_ROLES table and label-fallback order) but adds the ref
// assignment and interactivity rules the daemon's snapshot command needs:
// every included node gets a "eN" ref id written back onto the DOM as
// data-spel-ref, so a later command can resolve it to a locator.
const walkerScript = `
	var IMPLICIT_ROLES = {
		A: function(e){ return e.hasAttribute('href') ? 'link' : ''; },
		AREA: function(e){ return e.hasAttribute('href') ? 'link' : ''; },
		ARTICLE: function(){ return 'article'; }, ASIDE: function(){ return 'complementary'; },
		BUTTON: function(){ return 'button'; }, DETAILS: function(){ return 'group'; }, DIALOG: function(){ return 'dialog'; },
		FOOTER: function(){ return 'contentinfo'; }, FORM: function(){ return 'form'; },
		H1: function(){ return 'heading'; }, H2: function(){ return 'heading'; }, H3: function(){ return 'heading'; },
		H4: function(){ return 'heading'; }, H5: function(){ return 'heading'; }, H6: function(){ return 'heading'; },
		HEADER: function(){ return 'banner'; }, HR: function(){ return 'separator'; },
		IMG: function(e){ return e.getAttribute('alt') ? 'img' : 'presentation'; },
		INPUT: function(e){
			var t = (e.getAttribute('type') || 'text').toLowerCase();
			var m = {button:'button',checkbox:'checkbox',image:'button',
				number:'spinbutton',radio:'radio',range:'slider',
				reset:'button',search:'searchbox',submit:'button',text:'textbox',
				email:'textbox',tel:'textbox',url:'textbox',password:'textbox'};
			return m[t] || 'textbox';
		},
		LI: function(){ return 'listitem'; }, MAIN: function(){ return 'main'; }, MENU: function(){ return 'list'; },
		NAV: function(){ return 'navigation'; }, OL: function(){ return 'list'; }, OPTION: function(){ return 'option'; },
		OUTPUT: function(){ return 'status'; }, PROGRESS: function(){ return 'progressbar'; },
		SECTION: function(){ return 'region'; },
		SELECT: function(e){ return e.hasAttribute('multiple') ? 'listbox' : 'combobox'; },
		SUMMARY: function(){ return 'button'; }, TABLE: function(){ return 'table'; },
		TBODY: function(){ return 'rowgroup'; }, THEAD: function(){ return 'rowgroup'; }, TFOOT: function(){ return 'rowgroup'; },
		TD: function(){ return 'cell'; }, TEXTAREA: function(){ return 'textbox'; }, TH: function(){ return 'columnheader'; },
		TR: function(){ return 'row'; }, UL: function(){ return 'list'; }
	};
	var INTERACTIVE_TAGS = {A:1,BUTTON:1,INPUT:1,SELECT:1,TEXTAREA:1,SUMMARY:1,OPTION:1};
	var MEANINGFUL_ROLES = {button:1,link:1,textbox:1,checkbox:1,radio:1,combobox:1,listbox:1,
		slider:1,spinbutton:1,searchbox:1,switch:1,tab:1,menuitem:1,heading:1,img:1,table:1,
		row:1,cell:1,columnheader:1,list:1,listitem:1,dialog:1,group:1,progressbar:1,status:1};
	var SKIP_TAGS = {SCRIPT:1,STYLE:1,NOSCRIPT:1,LINK:1,META:1,BR:1,WBR:1};

	function isVisible(el){
		if (el.hasAttribute('aria-hidden') && el.getAttribute('aria-hidden') === 'true') return false;
		if (el.hasAttribute('hidden')) return false;
		var style = getComputedStyle(el);
		if (style.display === 'none' || style.visibility === 'hidden') return false;
		if (parseFloat(style.opacity) === 0) return false;
		return true;
	}

	function getRole(el){
		var explicit = el.getAttribute('role');
		if (explicit) return explicit.toLowerCase();
		var fn = IMPLICIT_ROLES[el.tagName];
		return fn ? (fn(el) || 'generic') : 'generic';
	}

	function getName(el){
		var ariaLabel = el.getAttribute('aria-label');
		if (ariaLabel) return ariaLabel;
		var labelledBy = el.getAttribute('aria-labelledby');
		if (labelledBy) {
			var parts = labelledBy.split(/\s+/).map(function(id){
				var ref = document.getElementById(id);
				return ref ? (ref.textContent || '').trim() : '';
			}).filter(Boolean);
			if (parts.length) return parts.join(' ');
		}
		if (el.id) {
			var assocLabel = document.querySelector('label[for="' + el.id + '"]');
			if (assocLabel) return (assocLabel.textContent || '').trim();
		}
		var parentLabel = el.closest('label');
		if (parentLabel) return (parentLabel.textContent || '').trim();
		var placeholder = el.getAttribute('placeholder');
		if (placeholder) return placeholder;
		var alt = el.getAttribute('alt');
		if (alt) return alt;
		var title = el.getAttribute('title');
		if (title) return title;
		var text = (el.textContent || '').trim();
		if (text && el.children.length === 0) return text;
		return '';
	}

	function isInteractive(el, role){
		if (INTERACTIVE_TAGS[el.tagName]) return true;
		if (el.hasAttribute('tabindex')) return true;
		if (el.hasAttribute('onclick')) return true;
		if (el.isContentEditable) return true;
		return MEANINGFUL_ROLES[role] === 1 && (role === 'button' || role === 'link' || role === 'textbox' ||
			role === 'checkbox' || role === 'radio' || role === 'combobox' || role === 'listbox' ||
			role === 'slider' || role === 'spinbutton' || role === 'searchbox' || role === 'switch' ||
			role === 'tab' || role === 'menuitem');
	}

	function hasBgImage(el){
		var style = getComputedStyle(el);
		return style.backgroundImage && style.backgroundImage !== 'none';
	}

	function buildNode(el, counter, prefix){
		if (SKIP_TAGS[el.tagName] || el.hasAttribute('data-spel-annotation')) return null;
		if (!isVisible(el)) return null;

		var role = getRole(el);
		var name = getName(el);
		var interactive = isInteractive(el, role);

		var directText = '';
		for (var i = 0; i < el.childNodes.length; i++) {
			var n = el.childNodes[i];
			if (n.nodeType === 3) directText += n.textContent;
		}
		directText = directText.trim();

		var childNodes = [];
		for (var c = 0; c < el.children.length; c++) {
			var built = buildNode(el.children[c], counter, prefix);
			if (built) childNodes.push(built);
		}

		var meaningfulWithContent = MEANINGFUL_ROLES[role] && (name || directText || childNodes.length);
		var textLeaf = role === 'generic' && !childNodes.length && directText !== '';
		var mixed = directText !== '' && childNodes.length > 0;
		var smallBgImage = hasBgImage(el) && el.getBoundingClientRect().width < 64 && el.getBoundingClientRect().height < 64;

		var include = interactive || meaningfulWithContent || textLeaf || mixed || smallBgImage;
		if (!include) {
			if (childNodes.length === 1) return childNodes[0];
			if (childNodes.length > 1) {
				return {role: 'generic', children: childNodes};
			}
			return null;
		}

		var node = {role: role};
		if (name) node.name = name;
		if (!name && textLeaf) node.name = directText;
		node.tag = el.tagName.toLowerCase();
		node.interactive = interactive;
		if (mixed) node.mixed = true;

		var r = el.getBoundingClientRect();
		node.box = {x: Math.round(r.x), y: Math.round(r.y), width: Math.round(r.width), height: Math.round(r.height)};

		var ref = prefix + 'e' + (counter.n++);
		el.setAttribute('data-spel-ref', ref);
		node.ref = ref;

		if (el.hasAttribute('disabled') || el.disabled) node.disabled = true;
		if (el.hasAttribute('aria-expanded')) node.expanded = el.getAttribute('aria-expanded') === 'true';
		if (document.activeElement === el) node.focused = true;
		if (typeof el.checked === 'boolean' && (el.type === 'checkbox' || el.type === 'radio')) {
			node.checked = el.checked;
		} else if (el.hasAttribute('aria-checked')) {
			var vC = el.getAttribute('aria-checked');
			node.checked = vC === 'true' ? true : (vC === 'mixed' ? 'mixed' : false);
		}
		if (el.hasAttribute('aria-pressed')) {
			var vP = el.getAttribute('aria-pressed');
			node.pressed = vP === 'true' ? true : (vP === 'mixed' ? 'mixed' : false);
		}
		if (el.hasAttribute('aria-selected') && el.getAttribute('aria-selected') === 'true') node.selected = true;
		if (el.hasAttribute('required') || el.required) node.required = true;
		if (el.hasAttribute('readonly') || el.readOnly) node.readonly = true;

		if (role === 'heading') {
			var tag = el.tagName;
			var lvl = {H1:1,H2:2,H3:3,H4:4,H5:5,H6:6}[tag];
			if (!lvl) { var la = el.getAttribute('aria-level'); if (la) lvl = parseInt(la, 10); }
			if (lvl) node.level = lvl;
		}

		if (childNodes.length) node.children = childNodes;
		return node;
	}

	return function(scopeSelector, refPrefix){
		var rootEl = scopeSelector ? document.querySelector(scopeSelector) : document.body;
		var existing = document.querySelectorAll('[data-spel-ref]');
		for (var i = 0; i < existing.length; i++) existing[i].removeAttribute('data-spel-ref');
		if (!rootEl) return JSON.stringify({tree: null, counter: 0});

		var counter = {n: 1};
		var children = [];
		for (var c = 0; c < rootEl.children.length; c++) {
			var built = buildNode(rootEl.children[c], counter, refPrefix || '');
			if (built) children.push(built);
		}
		var tree = {role: 'WebArea', name: document.title, children: children};
		return JSON.stringify({tree: tree, counter: counter.n - 1});
	}
`

// Capture runs the walker against one page and decodes its result.
// scopeSelector restricts the walk to a subtree; refPrefix namespaces ref
// ids for multi-frame snapshots ("f1_", "f2_", ...).
func Capture(ctx context.Context, p facade.Page, scopeSelector, refPrefix string) (*Tree, error) {
	raw, err := p.EvaluateJS(ctx, "return ("+walkerScript+")(arguments[0], arguments[1])", scopeSelector, refPrefix)
	if err != nil {
		return nil, fmt.Errorf("walker evaluation failed: %w", err)
	}
	s, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("walker returned non-string result")
	}
	var t Tree
	if err := json.Unmarshal([]byte(s), &t); err != nil {
		return nil, fmt.Errorf("parse walker result: %w", err)
	}
	return &t, nil
}
