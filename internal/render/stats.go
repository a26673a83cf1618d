package render

import (
	"strings"

	"github.com/dear-data/vjournal/internal/domain"
)

// StatsBars renders visual standard E: hand-drawn bars with jittered edges
// and value labels.
func StatsBars(scene domain.Scene) string {
	categories := scene.Dimensions.Categories
	if categories == nil {
		categories = []domain.Category{}
	}
	return strings.Replace(statsTemplate, "__CATS__", mustJSON(categories), 1)
}

const statsTemplate = `
// Stats Hand-Drawn Bars (Standard E)

var categories = __CATS__;

var bounds = view.bounds;
var margin = 60;
var inner = bounds.expand(-margin);

var bg = new Path.Rectangle(bounds);
bg.fillColor = new Color(0.99,0.97,0.94);

var sheet = new Path.Rectangle(inner.expand(10));
sheet.fillColor = new Color(1,1,1,0.98);
sheet.strokeColor = new Color(0.86,0.84,0.82);
sheet.strokeWidth = 1.5;

var title = new PointText(new Point(inner.left, inner.top - 24));
title.justification = 'left';
title.content = "Hand-Drawn Stats";
title.fillColor = new Color(0.26,0.28,0.33);
title.fontSize = 18;

if (categories.length === 0) {
    var msg = new PointText(inner.center);
    msg.justification = 'center';
    msg.content = "No numeric data.";
    msg.fillColor = new Color(0.4,0.4,0.4);
    msg.fontSize = 14;
} else {
    var maxVal = 0;
    for (var i=0; i<categories.length; i++) {
        var v = categories[i].value || 0;
        if (v > maxVal) maxVal = v;
    }
    if (maxVal <= 0) maxVal = 1;

    var left = inner.left + 80;
    var right = inner.right - 40;
    var bottom = inner.bottom - 40;
    var top = inner.top + 40;

    var count = categories.length;
    var barW = (right - left) / Math.max(1, count);

    for (var g=0; g<=5; g++) {
        var gy = bottom - (bottom - top) * (g/5);
        gy += (Math.random()-0.5)*2;
        var gl = new Path.Line(
            new Point(left-20, gy),
            new Point(right+10, gy)
        );
        gl.strokeColor = new Color(0.9,0.9,0.9);
        gl.strokeWidth = 0.8;
    }

    for (var i=0; i<categories.length; i++) {
        var cat = categories[i];
        var v = cat.value || 0;
        var name = cat.name || ("C"+(i+1));

        var xCenter = left + barW*(i+0.5);
        var norm = v / maxVal;
        var h = (bottom - top) * norm;

        var x0 = xCenter - barW*0.3 + (Math.random()-0.5)*4;
        var y0 = bottom + (Math.random()-0.5)*4;

        var bar = new Path.Rectangle(
            new Point(x0, y0 - h),
            new Size(barW*0.6, h)
        );
        bar.fillColor = new Color(0.6+Math.random()*0.2,
                                  0.68+Math.random()*0.1,
                                  0.82+Math.random()*0.1,
                                  0.9);
        bar.strokeColor = new Color(0.32,0.36,0.46,0.8);
        bar.strokeWidth = 1.2;

        var s = new Path();
        var steps = 6;
        for (var k=0; k<steps; k++) {
            var px = x0 + barW*0.6*(k/(steps-1));
            var py = y0 - h + (Math.random()-0.5)*6;
            if (k==0) s.add(new Point(px,py));
            else s.lineTo(new Point(px,py));
        }
        s.strokeColor = new Color(0.26,0.3,0.38,0.7);
        s.strokeWidth = 0.8;

        var lp = new Point(xCenter, bottom + 20);
        var txt = new PointText(lp);
        txt.justification = 'center';
        txt.content = name + " (" + v.toFixed(1) + ")";
        txt.fillColor = new Color(0.3,0.32,0.38);
        txt.fontSize = 9;
    }
}
`
